//go:build rp2040 || rp2350

package main

import (
	"context"
	"time"

	"breather-go/errcode"
	"breather-go/internal/loop"
	"breather-go/internal/platform"
	"breather-go/internal/platform/boards"
	"breather-go/x/timex"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("[boot] board", boards.Selected.Name, "profile", profile.Name)

	ctx := context.Background()

	hw, err := platform.Setup(ctx, boards.Selected)
	if err != nil {
		halt(err)
	}
	c, err := loop.New(profile, hw.Deps(nil))
	if err != nil {
		halt(err)
	}

	println("[boot] running")
	// Sleep never cancels, so Run only returns if ctx does.
	halt(c.Run(ctx, timex.Sleep))
}

func halt(err error) {
	println("[boot] FAIL:", string(errcode.Of(err)), err.Error())
	for {
		time.Sleep(time.Hour)
	}
}
