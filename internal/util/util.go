package util

import (
	"math"
	"strings"
)

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}

// Round rounds f to the given number of decimals.
func Round(f float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}

// UpperUnique trims and upper-cases values, dropping blanks and repeats.
// Order of first appearance is kept.
func UpperUnique(values []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range values {
		u := strings.ToUpper(strings.TrimSpace(v))
		if u != "" && !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
