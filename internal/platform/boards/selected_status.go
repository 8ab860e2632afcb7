//go:build board_pico_status

package boards

var Selected = PicoStatus
