// Copyright (c) 2023 The CellChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &App{}
	cliApp := &cli.App{
		Name:     "cellchain-tools",
		Usage:    "inspect and verify transaction since locks",
		Flags:    app.InitFlags(),
		Before:   app.InitCfg,
		Commands: app.getCommands(),
	}

	err := cliApp.Run(os.Args)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}

func (app *App) getCommands() cli.Commands {
	return []*cli.Command{
		{
			Name:   "decode-since",
			Usage:  "decode a packed 64-bit since value",
			Flags:  app.DecodeSinceFlags(),
			Action: app.DecodeSinceCmd,
		},
		{
			Name:   "encode-since",
			Usage:  "pack a lock condition into a since value",
			Flags:  app.EncodeSinceFlags(),
			Action: app.EncodeSinceCmd,
		},
		{
			Name:   "verify-tx",
			Usage:  "verify since locks of a transaction against the recorded chain view",
			Flags:  app.VerifyTxFlags(),
			Action: app.VerifyTxCmd,
		},
	}
}
