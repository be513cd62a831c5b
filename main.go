package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/wildfunctions/reach_target/pkg/engine"
	"github.com/wildfunctions/reach_target/pkg/strategy"
)

const (
	promptNumbers = "Input numbers > "
	promptTarget  = "Input target > "
)

// exitNotFound is returned when the search space holds no solution.
const exitNotFound = 2

func main() {
	cfg := engine.DefaultConfig()
	numbers := ""
	target := ""

	flag.StringVar(&numbers, "numbers", numbers, "space separated integers (prompted when empty)")
	flag.StringVar(&target, "target", target, "target value, integer or n/d (prompted when empty)")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "search order ("+strings.Join(strategy.Names(), ", ")+")")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format ("+strings.Join(engine.Formats(), ", ")+")")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "debug logging to stderr")
	flag.Int64Var(&cfg.MaxCandidates, "max", cfg.MaxCandidates, "max candidates to evaluate (0 = unlimited)")
	flag.Parse()

	if numbers == "" || target == "" {
		var err error
		numbers, target, err = prompt(numbers, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
			os.Exit(1)
		}
	}

	values, err := parseNumbers(numbers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cfg.Values = values
	cfg.Target = strings.TrimSpace(target)

	e, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "calculating...")
	report := e.Run()

	if err := engine.Write(os.Stdout, cfg.Format, report); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", cfg.Format, err)
		os.Exit(1)
	}
	if !report.Found {
		os.Exit(exitNotFound)
	}
}

// prompt asks for whichever of numbers and target is still empty.
func prompt(numbers, target string) (string, string, error) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var err error
	if numbers == "" {
		if numbers, err = ln.Prompt(promptNumbers); err != nil {
			return "", "", promptErr(err)
		}
		ln.AppendHistory(numbers)
	}
	if target == "" {
		if target, err = ln.Prompt(promptTarget); err != nil {
			return "", "", promptErr(err)
		}
		ln.AppendHistory(target)
	}
	return numbers, target, nil
}

func promptErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return errors.New("input aborted")
	}
	return err
}

// parseNumbers splits on spaces and commas.
func parseNumbers(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("no numbers given")
	}
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse number %q", f)
		}
		values[i] = v
	}
	return values, nil
}
