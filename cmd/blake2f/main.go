// blake2f runs the EIP-152 BLAKE2b F precompile on hex encoded inputs.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	MaxRoundsFlag = &cli.UintFlag{
		Name:    "max-rounds",
		Usage:   "reject inputs requesting more rounds (0 = unlimited)",
		EnvVars: []string{"BLAKE2F_MAX_ROUNDS"},
	}
	GasFlag = &cli.BoolFlag{
		Name:  "gas",
		Usage: "print the required gas before each output",
	}
	VerbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "log level (panic, fatal, error, warn, info, debug, trace)",
		Value:   "warn",
		EnvVars: []string{"BLAKE2F_VERBOSITY"},
	}
)

const description = `Each input is the 213-byte EIP-152 encoding in hex. When no inputs are
given they are read from standard input, one per line.`

func newApp() *cli.App {
	return &cli.App{
		Name:        "blake2f",
		Usage:       "run the BLAKE2b compression precompile",
		ArgsUsage:   "[hex input...]",
		Description: description,
		Flags:       []cli.Flag{MaxRoundsFlag, GasFlag, VerbosityFlag},
		Before:      setupLogging,
		Action:      run,
	}
}

func setupLogging(ctx *cli.Context) error {
	lvl, err := logrus.ParseLevel(ctx.String(VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetOutput(ctx.App.ErrWriter)
	logrus.SetLevel(lvl)
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
