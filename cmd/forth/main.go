// Command forth runs the FORTH-like interpreter over script files and an
// interactive or piped session, one line at a time.  A failing line prints
// its diagnostic and the session continues with the next line.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/forthkit/forth"
	"github.com/forthkit/forth/internal/lineio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var trace bool
	var dump bool
	var configPath string
	flag.BoolVar(&trace, "trace", false, "enable dispatch trace logging")
	flag.BoolVar(&dump, "dump", false, "dump interpreter state before exit")
	flag.StringVar(&configPath, "config", "", "load run-control from a yaml file")
	flag.Parse()

	cfg := defaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return err
		}
	}

	var opts []forth.Option
	if trace || cfg.Trace {
		log.Printf("session %v", uuid.NewString())
		opts = append(opts, forth.WithLogf(log.Printf))
	}
	in := forth.New(opts...)

	scripts := append(cfg.Prelude, flag.Args()...)
	if err := runScripts(in, scripts); err != nil {
		return err
	}

	var err error
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		err = runInteractive(in, cfg)
	} else {
		err = runSource(in, lineio.Source{Name: "stdin", Reader: os.Stdin})
	}
	if err != nil {
		return err
	}

	if dump {
		return in.Dump(os.Stdout)
	}
	return nil
}

// runScripts executes every named script file in order.  Failing lines are
// reported with their location and the script keeps going, matching the
// interactive policy.
func runScripts(in *forth.Interp, paths []string) error {
	sources := make([]lineio.Source, 0, len(paths))
	closers := make([]io.Closer, 0, len(paths))
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		closers = append(closers, f)
		sources = append(sources, lineio.Source{Name: path, Reader: f})
	}
	return runSource(in, sources...)
}

func runSource(in *forth.Interp, sources ...lineio.Source) error {
	input := lineio.New(sources...)
	for {
		line, loc, err := input.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if err := in.ExecuteLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", loc, err)
		}
	}
}

func runInteractive(in *forth.Interp, cfg config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "bye",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := in.ExecuteLine(line); err != nil {
			fmt.Printf("? %v\n", err)
			continue
		}
		fmt.Println(" ok")
	}
}
