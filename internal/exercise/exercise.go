// Package exercise contains the drill function library: small pure functions
// over primitive values, plus the registry of named drills and their sample
// cases. Inputs violating a documented precondition return an
// INVALID_ARGUMENT semantic error; nothing panics, retries or blocks.
package exercise

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"drill/pkg/serrors"
)

// DoubleNum returns twice the given number.
func DoubleNum(n int) int {
	return 2 * n
}

// LastChar returns the final character of s. Multi-byte text yields the final
// rune, not a trailing continuation byte. An empty string is invalid.
func LastChar(s string) (rune, error) {
	if s == "" {
		return 0, serrors.With(serrors.ErrInvalidArgument, "empty string has no last character")
	}

	r, _ := utf8.DecodeLastRuneInString(s)

	return r, nil
}

// Max returns the greater of a and b, preferring a when equal.
func Max(a, b int) int {
	if b > a {
		return b
	}

	return a
}

// Abs returns the absolute value of n, computed by comparison.
func Abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// CountVowels counts the characters of s that are one of A, E, I, O, U.
// The drill works on uppercase text; lowercase vowels are not counted.
func CountVowels(s string) int {
	count := 0
	for _, r := range s {
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			count++
		}
	}

	return count
}

// TableRow returns the first count multiples of base joined by single spaces,
// with no trailing space: "base 2×base ... count×base". A count below one is
// invalid. Multiples beyond the int range wrap around; inputs whose products
// overflow are outside the drill's domain.
func TableRow(base, count int) (string, error) {
	if count < 1 {
		return "", serrors.With(serrors.ErrInvalidArgument, "count must be at least 1, got %d", count)
	}

	var row strings.Builder
	for i := 1; i <= count; i++ {
		if i > 1 {
			row.WriteByte(' ')
		}
		row.WriteString(strconv.Itoa(i * base))
	}

	return row.String(), nil
}

// rngMu guards rng. The source is swapped as a whole on Reseed so draws after
// a reseed come from a fresh deterministic stream.
var (
	rngMu sync.Mutex                                         //nolint: gochecknoglobals
	rng   = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gochecknoglobals
)

// Reseed replaces the process-wide random source with a deterministic one
// derived from seed, making subsequent RandomBetween draws reproducible.
func Reseed(seed uint64) {
	rngMu.Lock()
	defer rngMu.Unlock()

	rng = rand.New(rand.NewPCG(seed, seed))
}

// RandomBetween returns a uniformly distributed pseudo-random integer in
// [low, high]. Equal bounds always return low. low above high is invalid.
func RandomBetween(low, high int) (int, error) {
	if low > high {
		return 0, serrors.With(serrors.ErrInvalidArgument, "low %d exceeds high %d", low, high)
	}
	if low == high {
		return low, nil
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	// the span may exceed the int range, so it is sized in uint64. A zero
	// span means the bounds cover every int.
	span := uint64(high) - uint64(low) + 1
	if span == 0 {
		return int(rng.Uint64()), nil
	}

	// the true sum lies in [low, high], so the wrapping int addition lands on
	// the exact value even when the offset alone does not fit in an int.
	return low + int(rng.Uint64N(span)), nil
}

// ContainsDigit reports whether the decimal representation of number contains
// the given digit. The sign of number is ignored. A digit outside 0-9 is
// invalid.
func ContainsDigit(number, digit int) (bool, error) {
	if digit < 0 || digit > 9 {
		return false, serrors.With(serrors.ErrInvalidArgument, "digit must be between 0 and 9, got %d", digit)
	}

	if number == 0 {
		return digit == 0, nil
	}

	// remainders are compared by magnitude so negative numbers need no
	// up-front negation (which would overflow on the minimum int).
	for n := number; n != 0; n /= 10 {
		d := n % 10
		if d < 0 {
			d = -d
		}
		if d == digit {
			return true, nil
		}
	}

	return false, nil
}

// Average returns the arithmetic mean of a, b and c as a float64, with no
// rounding applied.
func Average(a, b, c int) float64 {
	return (float64(a) + float64(b) + float64(c)) / 3
}

// IsStrong reports whether pw passes the strength drill: at least 8 bytes
// long, containing at least one ASCII digit and at least one uppercase ASCII
// letter. Unicode digits and uppercase letters do not satisfy the character
// requirements, though they do count toward the length.
func IsStrong(pw string) bool {
	if len(pw) < 8 {
		return false
	}

	var hasDigit, hasUpper bool
	for i := 0; i < len(pw); i++ {
		switch {
		case pw[i] >= '0' && pw[i] <= '9':
			hasDigit = true
		case pw[i] >= 'A' && pw[i] <= 'Z':
			hasUpper = true
		}
	}

	return hasDigit && hasUpper
}
