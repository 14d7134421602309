// irqgen turns a CMSIS-SVD device description into a Go table of interrupt
// vector names.
package main

import "github.com/alecthomas/kong"

func main() {
	var cli struct {
		Gen  genCmd  `cmd:"" help:"Generate a Go vector name table."`
		List listCmd `cmd:"" help:"List the interrupts of an SVD file."`
	}

	ctx := kong.Parse(&cli,
		kong.Name("irqgen"),
		kong.Description("Generate interrupt name tables from CMSIS-SVD files."),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
