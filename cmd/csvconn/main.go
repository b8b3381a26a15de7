package main

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"go-ml.dev/pkg/csvconn/csvconn"
	"go-ml.dev/pkg/csvconn/model"
	"go-ml.dev/pkg/csvconn/snapshot"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros/zlog"
	"io"
	"os"
	"strings"
)

func main() {
	if err := app(os.Stdout).Run(os.Args); err != nil {
		zlog.Fatal(err)
	}
}

func app(out io.Writer) *cli.App {
	return &cli.App{
		Name:     "csvconn",
		HelpName: "csvconn",
		Usage:    "load CSV files into numeric datasets",
		Writer:   out,
		Commands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "load training and test files and print datasets summary",
				UsageText: "load [--config <file>] [--filename <file>] [options]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Usage: "YAML or JSON file with connector parameters"},
					&cli.StringFlag{Name: "filename", Usage: "training file"},
					&cli.StringFlag{Name: "test-filename", Usage: "test file"},
					&cli.StringFlag{Name: "label", Usage: "label column"},
					&cli.StringFlag{Name: "id", Usage: "id column"},
					&cli.StringSliceFlag{Name: "ignore", Usage: "ignored column, can be repeated"},
					&cli.StringFlag{Name: "separator", Usage: "columns separator"},
					&cli.BoolFlag{Name: "scale", Usage: "scale features to [0,1]"},
					&cli.StringFlag{Name: "mode", Usage: "train or predict"},
					&cli.StringFlag{Name: "sqlite", Usage: "store datasets into SQLite database"},
					&cli.StringFlag{Name: "log", Usage: "log file"},
					&cli.BoolFlag{Name: "verbose", Usage: "write log to stdout/stderr"},
				},
				Action: load,
			},
		},
	}
}

func params(c *cli.Context) (model.Params, error) {
	p := model.Params{}
	if c.IsSet("config") {
		var err error
		if p, err = model.ParamsFromYaml(iokit.File(c.String("config"))); err != nil {
			return nil, err
		}
	}
	in := p.Obj("parameters").Obj("input")
	if in == nil {
		in = p
	}
	for _, name := range []string{"filename", "test-filename", "label", "id", "separator", "mode"} {
		if c.IsSet(name) {
			in[strings.ReplaceAll(name, "-", "_")] = c.String(name)
		}
	}
	if c.IsSet("ignore") {
		in["ignore"] = c.StringSlice("ignore")
	}
	if c.IsSet("scale") {
		in["scale"] = c.Bool("scale")
	}
	return p, nil
}

func load(c *cli.Context) error {
	defer zlog.Config{Name: "csvconn", Verbose: c.Bool("verbose"), LogFile: c.String("log")}.Init().Close()
	p, err := params(c)
	if err != nil {
		return err
	}
	conn, err := csvconn.Load(p)
	if err != nil {
		return err
	}
	w := c.App.Writer
	fmt.Fprintf(w, "columns: %v\n", strings.Join(conn.Columns(), " "))
	fmt.Fprintf(w, "label position: %d\n", conn.LabelPos())
	fmt.Fprintf(w, "size: %d\n", conn.Size())
	fmt.Fprintf(w, "train records: %d\n", len(conn.Train()))
	if conn.Config().TestFilename != "" {
		fmt.Fprintf(w, "test records: %d\n", len(conn.Test()))
	}
	if b := conn.Bounds(); b.Defined() {
		fmt.Fprintf(w, "min: %v\nmax: %v\n", b.Min, b.Max)
	}
	if path := c.String("sqlite"); path != "" {
		if err = snapshot.Store(path, conn); err != nil {
			return err
		}
		fmt.Fprintf(w, "snapshot: %v\n", path)
	}
	return nil
}
