package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/f1vefour/carbide/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "carbide"
	app.Usage = "export host scenes to the Tungsten renderer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "export",
			Usage: "export a host scene snapshot to a renderer scene bundle",
			Description: `
Convert a host scene snapshot into the renderer's scene description: a
scene.json manifest plus binary mesh and image sidecar files, written to a
directory or packaged into a single zip archive.`,
			ArgsUsage: "scene_snapshot.json",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output path (file with --zip, directory otherwise)",
				},
				cli.BoolFlag{
					Name:  "self-contained",
					Usage: "copy all referenced assets into the bundle",
				},
				cli.BoolFlag{
					Name:  "zip",
					Usage: "package the bundle into a single zip archive",
				},
				cli.BoolTFlag{
					Name:  "compress",
					Usage: "compress archive entries (only used with --zip)",
				},
			},
			Action: cmd.ExportScene,
		},
		{
			Name:      "info",
			Usage:     "display information about an exported scene bundle",
			ArgsUsage: "scene_bundle",
			Action:    cmd.SceneInfo,
		},
	}

	app.Run(os.Args)
}
