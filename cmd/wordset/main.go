// Command wordset loads the words of text files into a word set and prints
// the listing, the count, or membership answers for queries read from stdin.
//
//	wordset [flags] FILE...
//
// With no FILE the words are read from stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"

	"github.com/aglyzov/go-dict/contract"
	"github.com/aglyzov/go-dict/internal/config"
	"github.com/aglyzov/go-dict/internal/logger"
	"github.com/aglyzov/go-dict/radix"
	"github.com/aglyzov/go-dict/tokenize"
)

type options struct {
	configPath string
	debug      bool
	verify     bool
	list       bool
	count      bool
	check      bool
	encoding   string
	files      []string
}

func parseFlags(args []string) (*options, map[string]bool, error) {
	var (
		fl   = flag.NewFlagSet("wordset", flag.ContinueOnError)
		opts = &options{}
		def  = config.Default()
		set  = map[string]bool{}
	)

	fl.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	fl.BoolVar(&opts.debug, "d", false, "Toggle debug logging")
	fl.BoolVar(&opts.verify, "verify", def.Dict.Verify, "Check the trie invariants around every added word")
	fl.BoolVar(&opts.list, "list", def.Output.List, "Print every stored word")
	fl.BoolVar(&opts.count, "count", def.Output.Count, "Print the number of stored words")
	fl.BoolVar(&opts.check, "check", false, "Read query lines from stdin and print membership of every word")
	fl.StringVar(&opts.encoding, "encoding", def.Input.Encoding, "Input encoding: utf-8 or latin1")

	if err := fl.Parse(args); err != nil {
		return nil, nil, err
	}
	opts.files = fl.Args()

	fl.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return opts, set, nil
}

// merge takes every option not given on the command line from cfg.
func (opts *options) merge(cfg *config.Config, set map[string]bool) {
	if !set["verify"] {
		opts.verify = cfg.Dict.Verify
	}
	if !set["list"] {
		opts.list = cfg.Output.List
	}
	if !set["count"] {
		opts.count = cfg.Output.Count
	}
	if !set["encoding"] {
		opts.encoding = cfg.Input.Encoding
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("wordset: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, set, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	opts.merge(cfg, set)

	level := cfg.Level()
	if opts.debug {
		level = log.DebugLevel
	}
	lg := logger.New("wordset", level)
	contract.SetLogger(lg)

	enc, err := tokenize.ParseEncoding(opts.encoding)
	if err != nil {
		return err
	}

	if opts.check && len(opts.files) == 0 {
		return errors.New("-check reads queries from stdin, word files must be given as arguments")
	}

	var dictOpts []radix.Option
	if opts.verify {
		lg.Debug("invariant checks enabled")
		dictOpts = append(dictOpts, radix.WithHook(radix.ContractHook()))
	}
	dict := radix.New(dictOpts...)

	if len(opts.files) == 0 {
		if err := load(dict, "<stdin>", stdin, enc, lg); err != nil {
			return err
		}
	}
	for _, name := range opts.files {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("open word file: %w", err)
		}
		err = load(dict, name, f, enc, lg)
		f.Close()
		if err != nil {
			return err
		}
	}

	st := dict.Stats()
	lg.Debug("trie built", "nodes", st.Nodes, "words", st.Words, "labelBytes", st.LabelBytes, "depth", st.MaxDepth)

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if opts.list {
		dict.Iter(func(word string) bool {
			fmt.Fprintln(out, word)
			return true
		})
	}
	if opts.count {
		fmt.Fprintln(out, dict.Len())
	}
	if opts.check {
		if err := query(dict, stdin, enc, out); err != nil {
			return err
		}
	}

	return nil
}

func load(dict *radix.Dict, name string, r io.Reader, enc encoding.Encoding, lg *log.Logger) error {
	st, err := tokenize.Load(dict, r, enc, lg.With("file", name))
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}

	lg.Info("loaded", "file", name, "lines", st.Lines, "words", st.Words, "added", st.Added)

	return nil
}

// query prints "word<TAB>true|false" for every word of every line of r.
func query(dict *radix.Dict, r io.Reader, enc encoding.Encoding, out io.Writer) error {
	scanner := bufio.NewScanner(enc.NewDecoder().Reader(r))

	for scanner.Scan() {
		for _, word := range tokenize.Split(scanner.Text()) {
			if _, err := fmt.Fprintf(out, "%s\t%v\n", word, dict.Has(word)); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}
