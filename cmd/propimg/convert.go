package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func convertCmd() *cli.Command {
	var (
		imagePath  string
		outputPath string
		target     string
	)

	return &cli.Command{
		Name:  "convert",
		Usage: "Convert between binary and EEPROM image formats",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "path to input image",
				Destination: &imagePath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path for the converted image",
				Destination: &outputPath,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "to",
				Usage:       "target format: binary or eeprom",
				Destination: &target,
				Required:    true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			img, err := readImage(imagePath)
			if err != nil {
				return err
			}

			switch target {
			case "eeprom":
				if err := img.ToEeprom(); err != nil {
					return err
				}
			case "binary":
				if err := img.ToBinary(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown target format %q: use binary or eeprom", target)
			}

			if err := writeImage(img, outputPath); err != nil {
				return err
			}

			fmt.Printf("wrote %s image (%d bytes) to %s\n", img.Type(), img.ImageSize(), outputPath)
			return nil
		},
	}
}
