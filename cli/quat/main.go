// Package main is the quat CLI command itself.
package main

import (
	"os"

	quatcli "github.com/JStech/quaternion/cli"
)

func main() {
	app := quatcli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		quatcli.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
