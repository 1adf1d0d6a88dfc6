package radix

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func getWords(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		words = make([]string, 0, total)
	)

	for len(words) < total {
		for _, word := range strings.Fields(faker.HipsterSentence(8)) {
			if word, err := Normalize(strings.Trim(word, ".,")); err == nil {
				words = append(words, word)
			}
		}
	}

	return words[:total]
}

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		words = getWords(b.N)
		m     = make(map[string]struct{})
	)

	b.ResetTimer()

	for _, word := range words {
		m[word] = struct{}{}
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		words = getWords(b.N)
		m     = make(map[string]struct{})
	)

	for _, word := range words {
		m[word] = struct{}{}
	}

	b.ResetTimer()

	for _, word := range words {
		_ = m[word]
	}
}

func BenchmarkDict_Add(b *testing.B) {
	var (
		words = getWords(b.N)
		d     = New()
	)

	b.ResetTimer()

	for _, word := range words {
		_, _ = d.Add(word)
	}
}

func BenchmarkDict_Has(b *testing.B) {
	var (
		words = getWords(b.N)
		d     = New()
	)

	for _, word := range words {
		_, _ = d.Add(word)
	}

	b.ResetTimer()

	for _, word := range words {
		_ = d.Has(word)
	}
}

func BenchmarkDict_Words(b *testing.B) {
	d := New()

	for _, word := range getWords(10_000) {
		_, _ = d.Add(word)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Words("")
	}
}
