package cmd

import (
	"github.com/urfave/cli"

	"github.com/f1vefour/carbide/log"
)

var logger = log.New("carbide")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
