// Package slug derives URL-safe article identifiers from free-form titles.
//
// Make never fails: titles that contain nothing usable fall back to a random
// hex token, so callers always get something they can store and route by.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dmitrijs2005/newsroom/internal/common"
)

// fallbackBytes is the number of random bytes behind the hex fallback token
// (16 hex characters).
const fallbackBytes = 8

// suffixBytes is the number of random bytes appended on slug collisions
// (8 hex characters).
const suffixBytes = 4

var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

// Make builds a slug from title. The result is non-empty and consists of
// lowercase ASCII letters, digits and single hyphens, never starting or
// ending with a hyphen.
func Make(title string) string {
	if title == "" {
		return randomToken(fallbackBytes)
	}

	var b strings.Builder
	for _, r := range strings.TrimSpace(strings.ToLower(title)) {
		if latin, ok := cyrillic[r]; ok {
			b.WriteString(latin)
			continue
		}
		switch {
		case r == '_' || unicode.IsSpace(r):
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	s := collapseHyphens(b.String())
	if s == "" {
		return randomToken(fallbackBytes)
	}
	return s
}

// WithTimestamp appends the unix time in seconds to base.
func WithTimestamp(base string, t time.Time) string {
	return base + "-" + strconv.FormatInt(t.Unix(), 10)
}

// WithRandomSuffix appends 8 random hex characters to s.
func WithRandomSuffix(s string) string {
	return s + "-" + randomToken(suffixBytes)
}

func collapseHyphens(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevHyphen := true // drops leading hyphens
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			if prevHyphen {
				continue
			}
			prevHyphen = true
		} else {
			prevHyphen = false
		}
		b.WriteByte(c)
	}
	return strings.TrimRight(b.String(), "-")
}

func randomToken(size int) string {
	token, err := common.MakeRandHexString(size)
	if err != nil {
		// unreachable on supported platforms
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return token
}
