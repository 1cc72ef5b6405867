package exercise_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"drill/internal/exercise"
	"drill/pkg/serrors"
)

func TestDoubleNum(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{n: 21, want: 42},
		{n: 0, want: 0},
		{n: -3, want: -6},
		{n: 1_000_000, want: 2_000_000},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, exercise.DoubleNum(tc.n))
	}
}

func TestLastChar(t *testing.T) {
	r, err := exercise.LastChar("COMPUTER")
	require.NoError(t, err)
	require.Equal(t, 'R', r)

	r, err = exercise.LastChar("x")
	require.NoError(t, err)
	require.Equal(t, 'x', r)

	// final rune, not final byte
	r, err = exercise.LastChar("café")
	require.NoError(t, err)
	require.Equal(t, 'é', r)

	_, err = exercise.LastChar("")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

func TestMax(t *testing.T) {
	cases := []struct {
		a, b int
		want int
	}{
		{a: 9, b: 4, want: 9},
		{a: 4, b: 9, want: 9},
		{a: 3, b: 3, want: 3},
		{a: -5, b: -2, want: -2},
		{a: 0, b: -1, want: 0},
	}

	for _, tc := range cases {
		got := exercise.Max(tc.a, tc.b)
		require.Equal(t, tc.want, got)
		require.GreaterOrEqual(t, got, tc.a)
		require.GreaterOrEqual(t, got, tc.b)
	}
}

func TestAbs(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{n: -7, want: 7},
		{n: 5, want: 5},
		{n: 0, want: 0},
		{n: -1, want: 1},
	}

	for _, tc := range cases {
		got := exercise.Abs(tc.n)
		require.Equal(t, tc.want, got)
		require.GreaterOrEqual(t, got, 0)
	}
}

func TestCountVowels(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{s: "COMPUTER", want: 3},
		{s: "AEIOU", want: 5},
		{s: "XYZ", want: 0},
		{s: "", want: 0},
		// the drill counts uppercase vowels only
		{s: "computer", want: 0},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, exercise.CountVowels(tc.s), "input %q", tc.s)
	}
}

func TestTableRow(t *testing.T) {
	cases := []struct {
		name  string
		base  int
		count int
		out   string
		ok    bool
	}{
		{
			name:  "four multiples of five",
			base:  5,
			count: 4,
			out:   "5 10 15 20",
			ok:    true,
		},
		{
			name:  "six multiples of three",
			base:  3,
			count: 6,
			out:   "3 6 9 12 15 18",
			ok:    true,
		},
		{
			name:  "single multiple has no spaces",
			base:  7,
			count: 1,
			out:   "7",
			ok:    true,
		},
		{
			name:  "negative base",
			base:  -2,
			count: 3,
			out:   "-2 -4 -6",
			ok:    true,
		},
		{
			name:  "zero count returns error",
			base:  5,
			count: 0,
			out:   "",
			ok:    false,
		},
		{
			name:  "negative count returns error",
			base:  5,
			count: -1,
			out:   "",
			ok:    false,
		},
	}

	for _, tc := range cases {
		got, err := exercise.TableRow(tc.base, tc.count)
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tc.name, err)
			}
			if got != tc.out {
				t.Errorf("%s: got %q, want %q", tc.name, got, tc.out)
			}
		} else if err == nil {
			t.Errorf("%s: expected error, got none (result %q)", tc.name, got)
		}
	}
}

func TestRandomBetween(t *testing.T) {
	// equal bounds always return the bound
	for range 10 {
		n, err := exercise.RandomBetween(7, 7)
		require.NoError(t, err)
		require.Equal(t, 7, n)
	}

	// repeated draws stay within the inclusive bounds
	for range 100 {
		n, err := exercise.RandomBetween(1, 6)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 6)
	}

	_, err := exercise.RandomBetween(6, 1)
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
}

// Bounds whose span exceeds the int range are still valid inputs and must
// neither panic nor leave the inclusive bounds.
func TestRandomBetweenExtremeBounds(t *testing.T) {
	for range 100 {
		_, err := exercise.RandomBetween(math.MinInt, math.MaxInt)
		require.NoError(t, err)
	}

	for range 100 {
		n, err := exercise.RandomBetween(-10, math.MaxInt)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, -10)
	}

	for range 100 {
		n, err := exercise.RandomBetween(math.MinInt, 10)
		require.NoError(t, err)
		require.LessOrEqual(t, n, 10)
	}
}

func TestReseedReproducesDraws(t *testing.T) {
	draw := func() []int {
		exercise.Reseed(42)
		draws := make([]int, 0, 10)
		for range 10 {
			n, err := exercise.RandomBetween(0, 1000)
			require.NoError(t, err)
			draws = append(draws, n)
		}

		return draws
	}

	require.Equal(t, draw(), draw())
}

func TestContainsDigit(t *testing.T) {
	cases := []struct {
		number int
		digit  int
		want   bool
	}{
		{number: 4829, digit: 8, want: true},
		{number: 4829, digit: 7, want: false},
		{number: 1001, digit: 0, want: true},
		// sign is ignored
		{number: -273, digit: 7, want: true},
		{number: 0, digit: 0, want: true},
		{number: 0, digit: 5, want: false},
	}

	for _, tc := range cases {
		got, err := exercise.ContainsDigit(tc.number, tc.digit)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "number %d digit %d", tc.number, tc.digit)
	}

	for _, digit := range []int{-1, 10, 42} {
		_, err := exercise.ContainsDigit(4829, digit)
		require.ErrorIs(t, err, serrors.ErrInvalidArgument, "digit %d", digit)
	}
}

func TestAverage(t *testing.T) {
	require.InDelta(t, 6.6666666667, exercise.Average(4, 10, 6), 1e-9)
	require.InDelta(t, 1.0, exercise.Average(1, 1, 1), 0)
	require.InDelta(t, 10.0, exercise.Average(0, 10, 20), 0)
	require.InDelta(t, -2.0, exercise.Average(-1, -2, -3), 0)
}

func TestIsStrong(t *testing.T) {
	cases := []struct {
		pw   string
		want bool
	}{
		{pw: "Abc12345", want: true},
		{pw: "weakpass", want: false},
		// has digit and uppercase but is too short
		{pw: "A1b2C3", want: false},
		// no lowercase requirement
		{pw: "ABCD1234", want: true},
		{pw: "Abcdefgh", want: false},
		{pw: "abc12345", want: false},
		{pw: "", want: false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, exercise.IsStrong(tc.pw), "password %q", tc.pw)
	}
}

// All drills except randomBetween must return identical output for identical
// inputs on repeated calls.
func TestIdempotence(t *testing.T) {
	require.Equal(t, exercise.DoubleNum(17), exercise.DoubleNum(17))
	require.Equal(t, exercise.Max(2, 5), exercise.Max(2, 5))
	require.Equal(t, exercise.Abs(-9), exercise.Abs(-9))
	require.Equal(t, exercise.CountVowels("AUDIO"), exercise.CountVowels("AUDIO"))
	require.Equal(t, exercise.Average(1, 2, 4), exercise.Average(1, 2, 4))
	require.Equal(t, exercise.IsStrong("Abc12345"), exercise.IsStrong("Abc12345"))

	r1, err1 := exercise.LastChar("DRILL")
	r2, err2 := exercise.LastChar("DRILL")
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, r1, r2)

	row1, err1 := exercise.TableRow(9, 3)
	row2, err2 := exercise.TableRow(9, 3)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, row1, row2)

	b1, err1 := exercise.ContainsDigit(4829, 2)
	b2, err2 := exercise.ContainsDigit(4829, 2)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, b1, b2)
}
