// Command simpleeditor is a minimal terminal text editor with a column
// ruler and a live status bar.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"example.com/simpleeditor/internal/app"
	"example.com/simpleeditor/pkg/config"
	"example.com/simpleeditor/pkg/logs"
)

const usage = "usage: simpleeditor [-config path] [file]"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("simpleeditor", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "config file (default "+config.DefaultPath()+")")
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() > 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	r, err := newRunner(*configPath, flags.Arg(0), stderr)
	if err != nil {
		fmt.Fprintf(stderr, "simpleeditor: %v\n", err)
		return 1
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(stderr, "simpleeditor: %v\n", err)
		return 1
	}
	return 0
}

// newRunner builds the editor for file. A config that fails to load is
// reported and replaced by defaults; a file that does not exist yet starts
// an empty buffer bound to that path.
func newRunner(configPath, file string, stderr io.Writer) (*app.Runner, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "simpleeditor: %v; using defaults\n", err)
		cfg = config.Default()
	}

	r := app.New(cfg)
	r.Logger = logs.NewFromEnv()
	if file == "" {
		return r, nil
	}
	if err := r.LoadFile(file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.Logger.Close()
			return nil, err
		}
		r.NewFile(file)
	}
	return r, nil
}
