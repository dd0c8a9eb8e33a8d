package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func checksumCmd() *cli.Command {
	var (
		imagePath string
		fix       bool
	)

	return &cli.Command{
		Name:  "checksum",
		Usage: "Verify the image checksum, optionally repairing it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "path to image file",
				Destination: &imagePath,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "fix",
				Usage:       "rewrite the checksum byte in place",
				Destination: &fix,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			img, err := readImage(imagePath)
			if err != nil {
				return err
			}

			if img.ChecksumIsValid() {
				fmt.Println("checksum valid")
				return nil
			}

			if !fix {
				expected, err := img.Checksum()
				if err != nil {
					return err
				}
				return fmt.Errorf("checksum invalid: byte 0x%02X would balance the image (run with --fix to repair)", expected)
			}

			if err := img.RecalculateChecksum(); err != nil {
				return err
			}
			if err := writeImage(img, imagePath); err != nil {
				return err
			}
			fmt.Println("checksum repaired")
			return nil
		},
	}
}
