//go:build (rp2040 || rp2350) && window

package main

import "breather-go/internal/config"

var profile = config.Window()
