package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/f1vefour/carbide/convert"
	"github.com/f1vefour/carbide/export"
	"github.com/f1vefour/carbide/scene"
)

// Export a host scene snapshot as a renderer scene bundle: a directory, or a
// single zip archive when --zip is set.
func ExportScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing host scene snapshot argument")
	}

	outPath := ctx.String("out")
	if outPath == "" {
		return errors.New("missing output path; use --out")
	}
	useZip := ctx.Bool("zip")

	// Reject mismatched targets before any work begins.
	if err := export.ValidateTarget(outPath, useZip); err != nil {
		return err
	}

	sc, err := scene.Load(ctx.Args().First())
	if err != nil {
		return err
	}

	opts := export.Options{
		SelfContained: ctx.Bool("self-contained"),
		Converters:    convert.Default(),
	}
	if !useZip {
		// Export straight into the caller-supplied directory.
		opts.Path = outPath
	}

	s, err := export.NewSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err = s.AddAll(sc); err != nil {
		return err
	}
	if err = s.Save(); err != nil {
		return err
	}
	if useZip {
		if err = s.WriteArchive(outPath, ctx.BoolT("compress")); err != nil {
			return err
		}
	}

	logger.Noticef("export summary:\n%s", s.Stats())
	return nil
}
