package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"go.bug.st/serial"

	"github.com/propeller-tools/go-propeller/loader"
	"github.com/propeller-tools/go-propeller/protocol"
)

func loadCmd() *cli.Command {
	var (
		imagePath string
		portName  string
		command   string
		baudRate  int64
		verbose   bool
	)

	return &cli.Command{
		Name:  "load",
		Usage: "Download an image to a Propeller over a serial port",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "path to .binary or .eeprom file",
				Destination: &imagePath,
			},
			&cli.StringFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Usage:       "serial port, e.g. /dev/ttyUSB0",
				Destination: &portName,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "command",
				Aliases:     []string{"c"},
				Usage:       "run, eeprom, eeprom-run, or shutdown",
				Destination: &command,
				Value:       "run",
			},
			&cli.IntFlag{
				Name:        "baud",
				Usage:       "baud rate",
				Destination: &baudRate,
				Value:       protocol.DefaultBaudRate,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log protocol details",
				Destination: &verbose,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cmd, err := parseCommand(command)
			if err != nil {
				return err
			}
			if cmd.SendsImage() && imagePath == "" {
				return fmt.Errorf("command %q needs an image: pass --image", command)
			}

			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				Prefix:          "propimg",
			})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			port, err := openAndReset(portName, int(baudRate))
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			l := loader.New(port,
				loader.WithLogger(&charmLogger{logger: logger}),
				loader.WithProgressCallback(func(p loader.Progress) {
					// Per-chunk sending reports would flood the log.
					if p.Phase == loader.PhaseSending && p.BytesSent < p.TotalBytes {
						return
					}
					logger.Info("progress", "phase", p.Phase, "percent", fmt.Sprintf("%.0f", p.Percentage))
				}),
			)

			if cmd.SendsImage() {
				loaded, err := readImage(imagePath)
				if err != nil {
					return err
				}
				logger.Info("image loaded",
					"file", loaded.FileName(),
					"type", loaded.Type().String(),
					"bytes", loaded.ImageSize(),
				)
				return l.Load(ctx, loaded, cmd)
			}
			return l.Load(ctx, nil, cmd)
		},
	}
}

func parseCommand(name string) (protocol.Command, error) {
	switch name {
	case "run":
		return protocol.CmdLoadRun, nil
	case "eeprom":
		return protocol.CmdProgramShutdown, nil
	case "eeprom-run":
		return protocol.CmdProgramRun, nil
	case "shutdown":
		return protocol.CmdShutdown, nil
	default:
		return 0, fmt.Errorf("unknown command %q: use run, eeprom, eeprom-run, or shutdown", name)
	}
}

// openAndReset opens the serial port and pulses DTR to reset the chip, the
// reset wiring on Propeller development boards. The boot ROM listens
// shortly after reset, so the handshake must follow promptly.
func openAndReset(portName string, baudRate int) (serial.Port, error) {
	port, err := serial.Open(portName, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}

	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}

	if err := port.SetDTR(true); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("assert reset: %w", err)
	}
	time.Sleep(25 * time.Millisecond)
	if err := port.SetDTR(false); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("release reset: %w", err)
	}
	time.Sleep(90 * time.Millisecond)

	if err := port.ResetInputBuffer(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("drain input: %w", err)
	}

	return port, nil
}

// charmLogger adapts a charmbracelet logger to the loader.Logger interface.
type charmLogger struct {
	logger *log.Logger
}

func (l *charmLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *charmLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *charmLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}
