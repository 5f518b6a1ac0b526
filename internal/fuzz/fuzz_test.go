package fuzz

import "testing"

func FuzzEvaluate(f *testing.F) {
	seeds := []string{
		"6 * 3 + 4 * (9 / 3)",
		"2 ** 2 ^ 2 ** 2",
		"-10 ^ 2",
		"(-10) ^ 2",
		"2pi",
		"5ln(e)",
		"(5 <= 5) || (true || true) && false",
		"1 / 0",
		"unknownid",
		"53.3.4",
		"(3 + 2",
		"sin(1, 2)",
		"",
		"   ",
		"+",
		".",
		"..",
		"xy",
		")",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Fuzz panicked on input %q: %v", input, r)
			}
		}()

		_ = Fuzz([]byte(input))
	})
}
