// Package tokenize splits text into words and feeds them to a word set.
//
// A word is a maximal run of ASCII letters; everything else separates words.
// Words are returned lowercased.
package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Adder is anything that accepts words, such as *radix.Dict.
type Adder interface {
	Add(word string) (bool, error)
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// Split returns the words of line in order.
func Split(line string) []string {
	words := make([]string, 0)

	each(line, func(word string) {
		words = append(words, word)
	})

	return words
}

func each(line string, fn func(word string)) {
	for start := 0; start < len(line); {
		for start < len(line) && !isLetter(line[start]) {
			start++
		}
		if start == len(line) {
			return
		}

		end := start
		for end < len(line) && isLetter(line[end]) {
			end++
		}

		fn(strings.ToLower(line[start:end]))
		start = end
	}
}

// AddLine adds every word of line to dst and returns how many were new.
func AddLine(dst Adder, line string) (int, error) {
	var (
		added int
		err   error
	)

	each(line, func(word string) {
		if err != nil {
			return
		}

		var ok bool
		if ok, err = dst.Add(word); ok {
			added++
		}
	})

	return added, err
}

// Encoding names accepted by ParseEncoding.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
)

// ParseEncoding maps an encoding name to a decoder for the input stream.
// ASCII letters are the same in every accepted encoding; decoding only
// keeps multi-byte sequences from being misread.
func ParseEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", EncodingUTF8, "utf8", "ascii":
		return encoding.Nop, nil
	case EncodingLatin1, "iso-8859-1", "iso8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	}

	return nil, fmt.Errorf("unknown encoding %q", name)
}

// Stats counts what Load saw.
type Stats struct {
	Lines int
	Words int
	Added int
}

// Load reads r line by line, decoding it with enc, and adds every word to dst.
// It stops at the first error from dst or from reading.
func Load(dst Adder, r io.Reader, enc encoding.Encoding, logger *log.Logger) (Stats, error) {
	var st Stats

	if enc == nil {
		enc = encoding.Nop
	}
	if logger == nil {
		logger = log.Default()
	}

	scanner := bufio.NewScanner(enc.NewDecoder().Reader(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		st.Lines++

		line := scanner.Text()
		words := Split(line)

		for _, word := range words {
			ok, err := dst.Add(word)
			if err != nil {
				return st, fmt.Errorf("line %d: %w", st.Lines, err)
			}
			if ok {
				st.Added++
			}
		}
		st.Words += len(words)

		logger.Debug("line loaded", "line", st.Lines, "words", len(words))
	}

	if err := scanner.Err(); err != nil {
		return st, fmt.Errorf("read line %d: %w", st.Lines+1, err)
	}

	return st, nil
}
