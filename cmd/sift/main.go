/*
Command sift is the CLI adapter over the query engine: one subcommand per
query family, a global dictionary source (system dictionary, a word list
file, or a prebuilt cache), and pipe-driven cross-filtering when standard
input is not a terminal.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/hgreenberg/sift/dictionary"
	"github.com/hgreenberg/sift/query"
	"github.com/hgreenberg/sift/queue"
)

// systemDictionaryPath is the default word list consulted when neither -c
// nor -d is given.
const systemDictionaryPath = "/usr/share/dict/words"

func main() {
	app := &cli.App{
		Name:  "sift",
		Usage: "query a dictionary with regex, anagram, and transposition patterns",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "cache", Aliases: []string{"c"}, Usage: "read a prebuilt dictionary cache"},
			&cli.StringFlag{Name: "dict", Aliases: []string{"d"}, Usage: "read a newline-separated word list"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return query.ErrInvalidCommand
			}
			ast, err := query.NewRegex(c.Args().First())
			if err != nil {
				return err
			}
			return runQuery(c, ast)
		},
		Commands: []*cli.Command{
			lettersCommand("anagram", query.NewAnagram),
			lettersCommand("bank", query.NewBank),
			numberedCommand("transpose-delete", []string{"td"}, query.NewTransposeDelete),
			numberedCommand("transpose-add", []string{"ta"}, query.NewTransposeAdd),
			numberedCommand("delete", nil, query.NewDelete),
			numberedCommand("add", nil, query.NewAdd),
			numberedCommand("change", nil, query.NewChange),
			lengthCommand(),
			createCacheCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if isBrokenPipe(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadDictionary(c *cli.Context) (*dictionary.Dictionary, error) {
	if path := c.String("cache"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, dictionary.ErrFileIO
		}
		defer f.Close()
		return dictionary.ReadCache(f)
	}

	path := c.String("dict")
	if path == "" {
		path = systemDictionaryPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, dictionary.ErrFileIO
	}
	defer f.Close()
	return dictionary.NewFromReader(f)
}

// runQuery executes ast against the loaded dictionary. If standard input is
// a pipe, it cross-filters: each line of stdin substitutes '%' in ast, and
// results print as "input => match". Otherwise ast runs once and results
// print one per line.
func runQuery(c *cli.Context, ast query.AST) error {
	dict, err := loadDictionary(c)
	if err != nil {
		return err
	}
	engine := query.NewEngine(dict)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return printWords(query.SortedWords(engine.Run(ast)))
	}

	inputs, err := readLines(os.Stdin)
	if err != nil {
		return err
	}
	return printPairs(query.CrossFilter(engine, ast, inputs))
}

// readLines scans stdin line by line into a Queue and returns its contents
// as a slice, in input order.
func readLines(r io.Reader) ([]string, error) {
	buffered := queue.NewQueue[string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		buffered.Enqueue(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, dictionary.ErrFileIO
	}
	return buffered.ToArray(), nil
}

func printWords(words []dictionary.Word) error {
	w := bufio.NewWriter(os.Stdout)
	for _, word := range words {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return w.Flush()
}

func printPairs(pairs []query.Pair) error {
	w := bufio.NewWriter(os.Stdout)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s => %s\n", p.Input, p.Match); err != nil {
			return err
		}
	}
	return w.Flush()
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosedPipe)
}

type lettersCtor func(letters string) (query.AST, error)

func lettersCommand(name string, ctor lettersCtor) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     fmt.Sprintf("run a %s query", name),
		ArgsUsage: "<letters>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return query.ErrInvalidCommand
			}
			ast, err := ctor(c.Args().First())
			if err != nil {
				return err
			}
			return runQuery(c, ast)
		},
	}
}

type numberedCtor func(letters string, n int) (query.AST, error)

func numberedCommand(name string, aliases []string, ctor numberedCtor) *cli.Command {
	return &cli.Command{
		Name:      name,
		Aliases:   aliases,
		Usage:     fmt.Sprintf("run a %s query", name),
		ArgsUsage: "<letters>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "n", Value: 1, Usage: "number of positions to vary"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return query.ErrInvalidCommand
			}
			ast, err := ctor(c.Args().First(), c.Int("n"))
			if err != nil {
				return err
			}
			return runQuery(c, ast)
		},
	}
}

func lengthCommand() *cli.Command {
	return &cli.Command{
		Name:      "length",
		Usage:     "list every word of a given length",
		ArgsUsage: "<n>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return query.ErrInvalidCommand
			}
			n, ok := parseNonNegativeInt(c.Args().First())
			if !ok {
				return query.ErrInvalidNumber
			}
			ast, err := query.NewLength(n)
			if err != nil {
				return err
			}
			return runQuery(c, ast)
		},
	}
}

func parseNonNegativeInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func createCacheCommand() *cli.Command {
	return &cli.Command{
		Name:      "create-cache",
		Usage:     "build a dictionary from a word list and write a cache file",
		ArgsUsage: "<words-path> <cache-path>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return query.ErrInvalidCommand
			}
			wordsPath, cachePath := c.Args().Get(0), c.Args().Get(1)

			in, err := os.Open(wordsPath)
			if err != nil {
				return dictionary.ErrFileIO
			}
			defer in.Close()

			dict, err := dictionary.NewFromReader(in)
			if err != nil {
				return err
			}

			out, err := os.Create(cachePath)
			if err != nil {
				return dictionary.ErrFileIO
			}
			defer out.Close()

			return dict.WriteCache(out)
		},
	}
}
