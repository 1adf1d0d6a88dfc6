package tokenize

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/aglyzov/go-dict/radix"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Line string
		Exp  []string
	}{
		{"", []string{}},
		{";-=[]'", []string{}},
		{"+-=]\\abc def,;ghi; jkl\x00mnopqr s t", []string{"abc", "def", "ghi", "jkl", "mnopqr", "s", "t"}},
		{"+-=]\\aBc DEF,;ghI; jkl\x00mnopqr s T", []string{"abc", "def", "ghi", "jkl", "mnopqr", "s", "t"}},
		{"word", []string{"word"}},
		{"  two  words  ", []string{"two", "words"}},
		{"don't", []string{"don", "t"}},
		{"na\xefve caf\xe9", []string{"na", "ve", "caf"}},
		{"zero0one1two", []string{"zero", "one", "two"}},
	} {
		assert.Equal(t, tcase.Exp, Split(tcase.Line), "%q", tcase.Line)
	}
}

func TestAddLine(t *testing.T) {
	t.Parallel()

	d := radix.New(radix.WithHook(radix.ContractHook()))

	added, err := AddLine(d, "The quick brown fox; the LAZY dog, the end.")
	require.NoError(t, err)

	assert.Equal(t, 7, added)
	assert.Equal(t, 7, d.Len())
	assert.True(t, d.Has("the"))
	assert.True(t, d.Has("Lazy"))

	added, err = AddLine(d, "...")
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

type failingAdder struct {
	after int
}

var errFull = errors.New("full")

func (f *failingAdder) Add(string) (bool, error) {
	if f.after == 0 {
		return false, errFull
	}
	f.after--
	return true, nil
}

func TestAddLine_Error(t *testing.T) {
	t.Parallel()

	added, err := AddLine(&failingAdder{after: 2}, "one two three four")

	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, 2, added)
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "utf-8", "UTF8", "ascii", "latin1", "ISO-8859-1", "cp1252"} {
		enc, err := ParseEncoding(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := ParseEncoding("ebcdic")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	var (
		d      = radix.New()
		logger = log.New(io.Discard)
		input  = "abc def\nabcdef, ABC!\n\nprefix prefixone prefixtwo\n"
	)

	st, err := Load(d, strings.NewReader(input), nil, logger)
	require.NoError(t, err)

	assert.Equal(t, Stats{Lines: 4, Words: 7, Added: 6}, st)
	assert.Equal(t, 6, d.Len())
	assert.True(t, d.Has("prefixone"))
}

func TestLoad_Latin1(t *testing.T) {
	t.Parallel()

	// "café naïve" encoded as ISO-8859-1
	input, err := charmap.ISO8859_1.NewEncoder().String("café naïve\n")
	require.NoError(t, err)

	d := radix.New()

	st, err := Load(d, strings.NewReader(input), charmap.ISO8859_1, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, 1, st.Lines)
	assert.Equal(t, []string{"caf", "na", "ve"}, d.Words(""))
}

func TestLoad_FakeSentences(t *testing.T) {
	t.Parallel()

	var (
		fake = gofakeit.New(1234567890)
		buf  strings.Builder
		exp  = map[string]struct{}{}
	)

	for i := 0; i < 1_000; i++ {
		line := fake.HipsterSentence(6)
		for _, word := range Split(line) {
			exp[word] = struct{}{}
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	d := radix.New()

	st, err := Load(d, strings.NewReader(buf.String()), nil, log.New(io.Discard))
	require.NoError(t, err)

	assert.Equal(t, 1_000, st.Lines)
	assert.Equal(t, len(exp), st.Added)
	assert.Equal(t, len(exp), d.Len())
	assert.NoError(t, d.Check())

	for word := range exp {
		assert.True(t, d.Has(word), word)
	}
}
