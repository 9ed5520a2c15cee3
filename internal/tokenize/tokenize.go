// Package tokenize splits text into the words that get counted.
//
// Word boundaries follow Unicode Standard Annex #29 as implemented by
// github.com/rivo/uniseg; segments without a letter or digit (spaces,
// punctuation) are dropped.
package tokenize

import (
	"bufio"
	"io"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"

	"github.com/AlonMell/wordfreq/internal/logging"
)

var logger = logging.MustGetLogger("tokenize")

// maxLine is the longest line Scan accepts.
const maxLine = 1 << 20

// Options control which segments become words.
type Options struct {
	// Words shorter than this many runes are skipped
	MinLength int

	// Fold case so that "The" and "the" count as one word
	FoldCase bool

	// Words to skip, compared after folding
	Stopwords []string
}

// Tokenizer turns text into words. It is not safe for concurrent use.
type Tokenizer struct {
	opts  Options
	caser cases.Caser
	stop  map[string]struct{}
}

// New creates a Tokenizer for opts.
func New(opts Options) *Tokenizer {
	t := &Tokenizer{
		opts: opts,
		stop: make(map[string]struct{}, len(opts.Stopwords)),
	}
	if opts.FoldCase {
		t.caser = cases.Fold()
	}
	for _, w := range opts.Stopwords {
		t.stop[t.fold(w)] = struct{}{}
	}
	return t
}

func (t *Tokenizer) fold(w string) string {
	if !t.opts.FoldCase {
		return w
	}
	return t.caser.String(w)
}

// Words yields the words of text in order of appearance.
func (t *Tokenizer) Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		var seg string
		for len(text) > 0 {
			seg, text, state = uniseg.FirstWordInString(text, state)
			if !isWord(seg) {
				continue
			}
			w := t.fold(seg)
			if utf8.RuneCountInString(w) < t.opts.MinLength {
				continue
			}
			if _, skip := t.stop[w]; skip {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Scan reads r line by line and calls fn for every word. It stops at the
// first error returned by fn or by the reader.
func (t *Tokenizer) Scan(r io.Reader, fn func(word string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	lines := 0
	for sc.Scan() {
		lines++
		for w := range t.Words(sc.Text()) {
			if err := fn(w); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	logger.Debugf("scanned %d lines", lines)
	return nil
}

func isWord(seg string) bool {
	for _, r := range seg {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
