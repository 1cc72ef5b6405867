package exercise

import (
	"strconv"

	"github.com/go-faster/errors"
)

// formatInt, formatBool and formatFloat render drill outputs for comparison
// against the expected literals. Floats use the shortest representation that
// round-trips, so no precision is lost at the display boundary.
func formatInt(n int) string { return strconv.Itoa(n) }

func formatBool(b bool) string { return strconv.FormatBool(b) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// intCase binds an int-returning invocation to a sample case.
func intCase(give string, want int, run func() int) Case {
	return Case{
		Give: give,
		Want: strconv.Itoa(want),
		Run:  func() (string, error) { return formatInt(run()), nil },
	}
}

// boolCase binds a bool-returning invocation to a sample case.
func boolCase(give string, want bool, run func() (bool, error)) Case {
	return Case{
		Give: give,
		Want: formatBool(want),
		Run: func() (string, error) {
			b, err := run()
			if err != nil {
				return "", err
			}

			return formatBool(b), nil
		},
	}
}

// floatCase binds a float-returning invocation to a sample case. The expected
// literal is the shortest round-tripping representation of the exact result.
func floatCase(give, want string, run func() float64) Case {
	return Case{
		Give: give,
		Want: want,
		Run:  func() (string, error) { return formatFloat(run()), nil },
	}
}

// BuiltIn returns a registry populated with the ten drills and their sample
// cases, in the canonical order.
func BuiltIn() (*Registry, error) {
	registry := NewRegistry()

	specs := []Spec{
		{
			Name:        "doubleNum",
			Description: "Doubles a number",
			Cases: []Case{
				intCase("21", 42, func() int { return DoubleNum(21) }),
			},
		},
		{
			Name:        "lastChar",
			Description: "Returns the final character of a string",
			Cases: []Case{
				{
					Give: `"COMPUTER"`,
					Want: "R",
					Run: func() (string, error) {
						r, err := LastChar("COMPUTER")
						if err != nil {
							return "", err
						}

						return string(r), nil
					},
				},
			},
		},
		{
			Name:        "max",
			Description: "Returns the greater of two numbers",
			Cases: []Case{
				intCase("9, 4", 9, func() int { return Max(9, 4) }),
				intCase("3, 3", 3, func() int { return Max(3, 3) }),
			},
		},
		{
			Name:        "abs",
			Description: "Returns the absolute value of a number",
			Cases: []Case{
				intCase("-7", 7, func() int { return Abs(-7) }),
				intCase("5", 5, func() int { return Abs(5) }),
			},
		},
		{
			Name:        "countVowels",
			Description: "Counts uppercase vowels in a string",
			Cases: []Case{
				intCase(`"COMPUTER"`, 3, func() int { return CountVowels("COMPUTER") }),
				intCase(`"AEIOU"`, 5, func() int { return CountVowels("AEIOU") }),
				intCase(`"XYZ"`, 0, func() int { return CountVowels("XYZ") }),
			},
		},
		{
			Name:        "tableRow",
			Description: "Builds a multiplication table row as a string",
			Cases: []Case{
				{Give: "5, 4", Want: "5 10 15 20", Run: func() (string, error) { return TableRow(5, 4) }},
				{Give: "3, 6", Want: "3 6 9 12 15 18", Run: func() (string, error) { return TableRow(3, 6) }},
				{Give: "7, 1", Want: "7", Run: func() (string, error) { return TableRow(7, 1) }},
			},
		},
		{
			Name:        "randomBetween",
			Description: "Picks a pseudo-random number within inclusive bounds",
			Cases: []Case{
				{
					Give: "7, 7",
					Want: "7",
					Run: func() (string, error) {
						n, err := RandomBetween(7, 7)
						if err != nil {
							return "", err
						}

						return formatInt(n), nil
					},
				},
				{
					Give: "1, 6",
					Run: func() (string, error) {
						n, err := RandomBetween(1, 6)
						if err != nil {
							return "", err
						}

						return formatInt(n), nil
					},
					Check: func(got string) error {
						n, err := strconv.Atoi(got)
						if err != nil {
							return errors.Wrap(err, "output is not an integer")
						}
						if n < 1 || n > 6 {
							return errors.Errorf("%d is outside [1, 6]", n)
						}

						return nil
					},
				},
			},
		},
		{
			Name:        "containsDigit",
			Description: "Reports whether a number contains a given digit",
			Cases: []Case{
				boolCase("4829, 8", true, func() (bool, error) { return ContainsDigit(4829, 8) }),
				boolCase("4829, 7", false, func() (bool, error) { return ContainsDigit(4829, 7) }),
				boolCase("1001, 0", true, func() (bool, error) { return ContainsDigit(1001, 0) }),
			},
		},
		{
			Name:        "average",
			Description: "Averages three numbers with floating-point division",
			Cases: []Case{
				floatCase("4, 10, 6", "6.666666666666667", func() float64 { return Average(4, 10, 6) }),
				floatCase("1, 1, 1", "1", func() float64 { return Average(1, 1, 1) }),
				floatCase("0, 10, 20", "10", func() float64 { return Average(0, 10, 20) }),
			},
		},
		{
			Name:        "isStrong",
			Description: "Checks password strength (length, digit, uppercase)",
			Cases: []Case{
				boolCase(`"Abc12345"`, true, func() (bool, error) { return IsStrong("Abc12345"), nil }),
				boolCase(`"weakpass"`, false, func() (bool, error) { return IsStrong("weakpass"), nil }),
				boolCase(`"A1b2C3"`, false, func() (bool, error) { return IsStrong("A1b2C3"), nil }),
			},
		},
	}

	for _, spec := range specs {
		if err := registry.Register(spec); err != nil {
			return nil, errors.Wrap(err, "could not register built-in drill")
		}
	}

	return registry, nil
}
