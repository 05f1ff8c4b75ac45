package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TACITVS/Blake2f-Golang/eip152"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tmthrgd/go-hex"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context) error {
	p := eip152.New(eip152.Config{
		MaxRounds: uint32(ctx.Uint(MaxRoundsFlag.Name)),
	})

	args := ctx.Args().Slice()
	if len(args) == 0 {
		var err error
		if args, err = readLines(ctx.App.Reader); err != nil {
			return err
		}
	}
	logrus.WithField("inputs", len(args)).Debug("Loaded inputs")

	inputs := make([][]byte, len(args))
	for i, arg := range args {
		b, err := hex.DecodeString(strings.TrimPrefix(arg, "0x"))
		if err != nil {
			return errors.Wrapf(err, "input %d", i)
		}
		inputs[i] = b
	}

	outputs, err := p.RunBatch(ctx.Context, inputs)
	if err != nil {
		return err
	}
	for i, out := range outputs {
		if ctx.Bool(GasFlag.Name) {
			fmt.Fprintf(ctx.App.Writer, "%d ", p.RequiredGas(inputs[i]))
		}
		fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(out))
	}
	logrus.WithField("outputs", len(outputs)).Debug("Compression done")
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read inputs")
	}
	return lines, nil
}
