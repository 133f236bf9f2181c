package sqlexpr

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

func upperCoalesce(col string) string {
	return "UPPER(COALESCE(" + col + ", ''))"
}

// likeAny renders a disjunction of substring matches. Tokens come from the
// rule tables in this package and never from user input.
func likeAny(expr string, tokens []string) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, expr+" LIKE '%"+t+"%'")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// In renders "expr IN (...)" with every value bound.
func In(expr sq.Sqlizer, values []string) sq.Sqlizer {
	args := make([]any, 0, len(values)+1)
	args = append(args, expr)
	for _, v := range values {
		args = append(args, v)
	}
	return sq.Expr("? IN ("+sq.Placeholders(len(values))+")", args...)
}

// Compare renders "expr op ?" with value bound.
func Compare(expr sq.Sqlizer, op string, value any) sq.Sqlizer {
	return sq.Expr("? "+op+" ?", expr, value)
}

// Column wraps a plain column reference.
func Column(col string) sq.Sqlizer {
	return sq.Expr(col)
}

// OUI extracts the upper-cased vendor prefix of a MAC address column.
func OUI(bssidCol string) string {
	return "UPPER(REPLACE(REPLACE(LEFT(" + bssidCol + ", 8), ':', ''), '-', ''))"
}

func OUIExpr(bssidCol string) sq.Sqlizer {
	return sq.Expr(OUI(bssidCol))
}

// NormalizeOUI returns the six hex digit vendor prefix when s is one.
func NormalizeOUI(s string) (string, bool) {
	oui := strings.ToUpper(strings.NewReplacer(":", "", "-", "").Replace(strings.TrimSpace(s)))
	if len(oui) != 6 {
		return "", false
	}
	for _, r := range oui {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", false
		}
	}
	return oui, true
}
