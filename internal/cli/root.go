// Package cli implements the wordfreq command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlonMell/wordfreq/internal/config"
	"github.com/AlonMell/wordfreq/internal/logging"
	"github.com/AlonMell/wordfreq/internal/tokenize"
	"github.com/AlonMell/wordfreq/internal/wordcount"
)

const Version = "0.3.0"

// ErrNoInput is returned when no files are named and stdin is a terminal.
var ErrNoInput = errors.New("no input: name files or pipe text to stdin")

var logger = logging.MustGetLogger("cli")

// NewRootCommand builds the wordfreq command.
func NewRootCommand() *cobra.Command {
	var cfgFile string
	v := config.New()
	d := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "wordfreq [flags] [file ...]",
		Short: "Count word frequencies",
		Long: "wordfreq counts how often every word occurs in the named files, or in\n" +
			"stdin when no file (or \"-\") is given, and prints the counts.",
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logging.Init(cmd.ErrOrStderr(), isTerminal(cmd.ErrOrStderr()))
			if _, err := logging.InitFromSpec(cfg.LogLevel); err != nil {
				return err
			}
			return run(cmd, cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file path (yaml, toml or json)")
	flags.IntP("min-length", "m", d.MinLength, "skip words shorter than this many characters")
	flags.Bool("fold-case", d.FoldCase, "count words case-insensitively")
	flags.StringSliceP("stopwords", "s", nil, "words never counted")
	flags.StringSliceP("remove", "r", nil, "words deleted from the totals before reporting")
	flags.IntP("top", "n", d.Top, "rows printed when sorting by count, 0 prints all")
	flags.String("sort", d.Sort, `report order: "count" or "word"`)
	flags.Bool("summary", d.Summary, "print a distinct/total summary line")
	flags.Bool("verify", d.Verify, "check tree invariants after counting")
	flags.String("log-level", d.LogLevel, "log level spec, e.g. info or wordcount=debug:warning")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, args []string) error {
	ctx := cmd.Context()
	tok := tokenize.New(tokenize.Options{
		MinLength: cfg.MinLength,
		FoldCase:  cfg.FoldCase,
		Stopwords: cfg.Stopwords,
	})

	if len(args) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return ErrNoInput
		}
		args = []string{"-"}
	}

	counters := make([]*wordcount.Counter, 0, len(args))
	for _, name := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := countInput(cmd, tok, name)
		if err != nil {
			return err
		}
		counters = append(counters, c)
	}

	removeWords := removals(tok, cfg.Remove)
	iterators := make([]wordcount.Iterator, 0, len(counters))
	for i, c := range counters {
		for _, w := range removeWords {
			if n, ok := c.Remove(w); ok {
				logger.Infof("%s: removed %q (%d)", args[i], w, n)
			}
		}
		if cfg.Verify {
			if err := c.Verify(); err != nil {
				return fmt.Errorf("%s: %w", args[i], err)
			}
		}
		s := c.Stats()
		logger.Infof("%s: %d words, %d distinct, %d duplicates", args[i], s.Added, s.Distinct, s.Duplicates)
		iterators = append(iterators, c.Iterator())
	}

	merged := wordcount.NewMergeIterator(iterators...)
	defer merged.Close()

	var entries []wordcount.Entry
	if cfg.Sort == config.SortByWord {
		entries = wordcount.Collect(merged)
	} else {
		entries = wordcount.RankEntries(merged, cfg.Top)
	}

	var summary *Summary
	if cfg.Summary {
		summary = &Summary{}
		for _, c := range counters {
			summary.Total += c.Total()
		}
		summary.Distinct = distinct(counters)
	}
	return WriteReport(cmd.OutOrStdout(), entries, summary)
}

func countInput(cmd *cobra.Command, tok *tokenize.Tokenizer, name string) (*wordcount.Counter, error) {
	var r io.Reader
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	c := wordcount.New()
	err := tok.Scan(r, func(word string) error {
		c.Add(word)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	logger.Debugf("%s: counted %d words", name, c.Total())
	return c, nil
}

// removals normalizes the words to remove the same way input is tokenized.
func removals(tok *tokenize.Tokenizer, words []string) []string {
	var out []string
	for _, w := range words {
		for t := range tok.Words(w) {
			out = append(out, t)
		}
	}
	return out
}

// distinct counts words across all counters, each word once.
func distinct(counters []*wordcount.Counter) int {
	iterators := make([]wordcount.Iterator, 0, len(counters))
	for _, c := range counters {
		iterators = append(iterators, c.Iterator())
	}
	m := wordcount.NewMergeIterator(iterators...)
	defer m.Close()

	n := 0
	for m.Next() {
		n++
	}
	return n
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
