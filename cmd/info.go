package cmd

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/f1vefour/carbide/export"
)

// Display a summary of an exported scene bundle (directory or zip archive).
func SceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing exported scene path argument")
	}
	pathToBundle := ctx.Args().First()

	data, err := readManifest(pathToBundle)
	if err != nil {
		return err
	}

	var doc export.Document
	if err = json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("could not parse manifest in %s: %v", pathToBundle, err)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Entry", "Value"})
	table.Append([]string{"Primitives", strconv.Itoa(len(doc.Primitives))})
	table.Append([]string{"Bsdfs", strconv.Itoa(len(doc.Bsdfs))})
	table.Append([]string{"Media", strconv.Itoa(len(doc.Media))})
	table.Append([]string{"Resolution", fmt.Sprintf("%v", doc.Camera["resolution"])})
	table.Append([]string{"Integrator", fmt.Sprintf("%v", doc.Integrator["type"])})
	table.Append([]string{"Output file", fmt.Sprintf("%v", doc.Renderer["output_file"])})
	table.Render()

	logger.Noticef("scene information:\n%s", buf.String())
	return nil
}

// Load the manifest bytes from an export bundle. Directories hold the
// manifest directly; archives hold it as an entry.
func readManifest(pathToBundle string) ([]byte, error) {
	fi, err := os.Stat(pathToBundle)
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return os.ReadFile(filepath.Join(pathToBundle, export.ManifestFile))
	}

	zr, err := zip.OpenReader(pathToBundle)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != export.ManifestFile {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	return nil, fmt.Errorf("no %s entry in archive %s", export.ManifestFile, pathToBundle)
}
