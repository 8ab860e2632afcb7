//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"fmt"
	"os"

	terminate "github.com/pulcy/go-terminate"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"breather-go/internal/config"
)

const projectName = "breathsim"

var (
	projectVersion = "dev"
	projectBuild   = "dev"
)

func main() {
	var o options
	var levelFlag string

	pflag.StringVar(&o.variant, "variant", "breathe", "Firmware variant (breathe|window)")
	pflag.StringVar(&o.vocab, "vocab", "", "Serial vocabulary (normalized|legacy-breathe|legacy-window), default per variant")
	pflag.DurationVar(&o.period, "period", config.Period, "Loop period")
	pflag.StringVarP(&o.backend, "backend", "b", "term", "Hardware backend (term|gpio|headless)")
	pflag.StringVar(&o.serialDev, "serial", "", "Serial device for reports and commands (gpio and headless backends)")
	pflag.IntVar(&o.baud, "baud", config.Baud, "Serial baud rate")
	pflag.IntVar(&o.gpioIn[0], "gpio-in1", -1, "Linux GPIO line for button 1 (gpio backend)")
	pflag.IntVar(&o.gpioIn[1], "gpio-in2", -1, "Linux GPIO line for button 2 (gpio backend)")
	pflag.IntVar(&o.ticks, "ticks", 0, "Stop after this many iterations (0 runs until interrupted)")
	pflag.StringVarP(&levelFlag, "level", "l", "info", "Set log level")
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		Exitf("Unknown log level '%s'\n", levelFlag)
	}
	logger = logger.Level(level)

	// Prepare to shutdown in a controlled manor
	ctx, cancel := context.WithCancel(context.Background())
	t := terminate.NewTerminator(func(template string, args ...interface{}) {
		logger.Info().Msgf(template, args...)
	}, cancel)
	go t.ListenSignals()

	logger.Info().Str("version", projectVersion).Str("build", projectBuild).Msgf("Starting %s", projectName)
	if err := run(ctx, o, logger); err != nil {
		logger.Fatal().Err(err).Msg("breathsim failed")
	}
}

// Print the given error message and exit with code 1
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
