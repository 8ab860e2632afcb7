//go:build !board_pico_status

package boards

// Selected is the board the firmware is built for.
var Selected = PicoDefault
