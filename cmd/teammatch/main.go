// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "teammatch",
		Usage: "Form teams from topic preferences and trade members away from past collaborators",
		Commands: []*cli.Command{
			serveCmd,
			formCmd,
			swapCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var serveCmd = &cli.Command{
	Name:    "serve",
	Usage:   "Serve the team matching HTTP API",
	Aliases: []string{"s"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "specify the config.yaml",
			EnvVars: []string{"TEAMMATCH_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "override the listen address",
			EnvVars: []string{"TEAMMATCH_ADDR"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "override the log level (debug, info, warn, error)",
			EnvVars: []string{"TEAMMATCH_LOG_LEVEL"},
		},
	},
	Action: func(ctx *cli.Context) error {
		return doServe(ctx.Context, ctx.String("config"), ctx.String("addr"), ctx.String("log-level"))
	},
}

var formCmd = &cli.Command{
	Name:    "form",
	Usage:   "Form teams for a merge request file",
	Aliases: []string{"f"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "request",
			Required: true,
			Usage:    "specify the input request.json",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output teams.json",
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "override the request's max team size",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "print a summary",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.IsSet("max") && ctx.Int("max") < 1 {
			return fmt.Errorf("invalid max %d", ctx.Int("max"))
		}
		return doForm(ctx.String("request"), ctx.String("out"), ctx.Int("max"), ctx.Bool("verbose"))
	},
}

var swapCmd = &cli.Command{
	Name:    "swap",
	Usage:   "Trade members of the teams in a swap request file",
	Aliases: []string{"t"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "request",
			Required: true,
			Usage:    "specify the input request.json",
		},
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output teams.json",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "print a summary",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doSwap(ctx.String("request"), ctx.String("out"), ctx.Bool("verbose"))
	},
}
