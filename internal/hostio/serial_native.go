//go:build !rp2040 && !rp2350 && !wasm

package hostio

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tarm/serial"

	"breather-go/internal/uartio"
)

// readTimeout bounds each port read so the pump can notice cancellation.
const readTimeout = 100 * time.Millisecond

// SerialLink is an open host serial port feeding a pump.
type SerialLink struct {
	*uartio.Pump
	port *serial.Port
	log  zerolog.Logger
}

// OpenSerial opens device at baud and starts pumping received bytes.
func OpenSerial(ctx context.Context, device string, baud int, log zerolog.Logger) (*SerialLink, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        device,
		Baud:        baud,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", device)
	}
	log = log.With().Str("device", device).Int("baud", baud).Logger()
	log.Info().Msg("serial port open")
	return &SerialLink{
		Pump: uartio.Start(ctx, uartio.ReaderReceiver{R: port}, port, uartio.Config{}),
		port: port,
		log:  log,
	}, nil
}

// Close stops using the port. The pump exits once its context is done.
func (s *SerialLink) Close() error {
	if err := s.port.Close(); err != nil {
		return errors.Wrap(err, "close serial port")
	}
	if d := s.Drops(); d > 0 {
		s.log.Warn().Uint32("dropped", d).Msg("serial bytes dropped")
	}
	return nil
}
