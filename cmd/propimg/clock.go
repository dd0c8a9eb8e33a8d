package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/propeller-tools/go-propeller/image"
)

func clockCmd() *cli.Command {
	var (
		imagePath  string
		outputPath string
		frequency  int64
		mode       string
	)

	return &cli.Command{
		Name:  "clock",
		Usage: "Show or change the clock settings of an image",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "path to image file",
				Destination: &imagePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path for the modified image (default: in place)",
				Destination: &outputPath,
			},
			&cli.IntFlag{
				Name:        "frequency",
				Aliases:     []string{"f"},
				Usage:       "new clock frequency in Hz",
				Destination: &frequency,
			},
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "new clock mode byte, e.g. 0x6F",
				Destination: &mode,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			img, err := readImage(imagePath)
			if err != nil {
				return err
			}

			changed := false

			if frequency != 0 {
				if err := img.SetClockFrequency(uint32(frequency)); err != nil {
					return err
				}
				changed = true
			}
			if mode != "" {
				value, err := strconv.ParseUint(mode, 0, 8)
				if err != nil {
					return fmt.Errorf("parse clock mode %q: %w", mode, err)
				}
				if err := img.SetClockMode(uint8(value)); err != nil {
					return err
				}
				changed = true
			}

			if changed {
				if err := img.RecalculateChecksum(); err != nil {
					return err
				}
				if outputPath == "" {
					outputPath = imagePath
				}
				if err := writeImage(img, outputPath); err != nil {
					return err
				}
			}

			freq, err := img.ClockFrequency()
			if err != nil {
				return err
			}
			clockMode, err := img.ClockMode()
			if err != nil {
				return err
			}
			fmt.Printf("clock frequency: %d Hz\nclock mode: 0x%02X (%s)\n",
				freq, clockMode, image.ClockModeName(clockMode))
			return nil
		},
	}
}
