package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"

	"github.com/propeller-tools/go-propeller/image"
)

func infoCmd() *cli.Command {
	var imagePath string

	return &cli.Command{
		Name:  "info",
		Usage: "Show header fields, block sizes, and validity of an image",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "path to .binary or .eeprom file",
				Destination: &imagePath,
				Required:    true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			img, err := readImage(imagePath)
			if err != nil {
				return err
			}
			printInfo(img)
			return nil
		},
	}
}

func printInfo(img *image.Image) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"File", img.FileName()})
	table.Append([]string{"Type", img.Type().String()})
	table.Append([]string{"Image size", sizeText(img.ImageSize(), nil)})
	table.Append([]string{"Program size", sizeText(img.ProgramSize())})
	table.Append([]string{"Variable size", sizeText(img.VariableSize())})
	table.Append([]string{"Stack/free size", sizeText(img.StackSize())})

	if freq, err := img.ClockFrequency(); err == nil {
		table.Append([]string{"Clock frequency", fmt.Sprintf("%s Hz", humanize.Comma(int64(freq)))})
	} else {
		table.Append([]string{"Clock frequency", "-"})
	}
	if mode, err := img.ClockMode(); err == nil {
		table.Append([]string{"Clock mode", fmt.Sprintf("0x%02X (%s)", mode, image.ClockModeName(mode))})
	} else {
		table.Append([]string{"Clock mode", "-"})
	}
	if checksum, err := img.ReadByte(image.OffsetChecksum); err == nil {
		table.Append([]string{"Checksum byte", fmt.Sprintf("0x%02X", checksum)})
	} else {
		table.Append([]string{"Checksum byte", "-"})
	}
	table.Append([]string{"Checksum valid", yesNo(img.ChecksumIsValid())})
	table.Append([]string{"Image valid", yesNo(img.IsValid())})

	table.Render()
}

func sizeText(size int, err error) string {
	if err != nil {
		return "-"
	}
	if size < 0 {
		// Header pointers past the buffer end; the image is malformed.
		return fmt.Sprintf("%d bytes", size)
	}
	return fmt.Sprintf("%d bytes (%s)", size, humanize.IBytes(uint64(size)))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
