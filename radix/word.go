package radix

import (
	"errors"
	"fmt"
)

// ErrInvalidWord is returned for empty input or input with anything but ASCII letters.
var ErrInvalidWord = errors.New("invalid word")

const alphabetSize = 26

// Normalize validates a word and returns its lowercase form.
func Normalize(word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}

	var (
		buf   []byte // allocated on the first upper case letter only
		lower = true
	)

	for i := 0; i < len(word); i++ {
		ch := word[i]

		switch {
		case 'a' <= ch && ch <= 'z':
			if !lower {
				buf[i] = ch
			}
		case 'A' <= ch && ch <= 'Z':
			if lower {
				buf = make([]byte, len(word))
				copy(buf, word[:i])
				lower = false
			}
			buf[i] = ch + ('a' - 'A')
		default:
			return "", fmt.Errorf("%w: %q has %q at %d", ErrInvalidWord, word, ch, i)
		}
	}

	if lower {
		return word, nil
	}

	return string(buf), nil
}

// slot maps a lowercase letter to its child index 0..25.
func slot(ch byte) int {
	return int(ch - 'a')
}
