package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableObservations    = "app.observations"
	tableNetworks        = "app.api_network_explorer_mv"
	tableThreatScores    = "app.network_threat_scores"
	tableTags            = "app.network_tags"
	tableLocationMarkers = "app.location_markers"
	tableManufacturers   = "app.radio_manufacturers"
)

// cte is one named subquery of a WITH clause.
type cte struct {
	name  string
	query sq.Sqlizer
}

type withClause []cte

func (w withClause) ToSql() (string, []any, error) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("WITH ")
	for i, c := range w {
		sql, a, err := c.query.ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("failed to render cte %s: %w", c.name, err)
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.name)
		b.WriteString(" AS (")
		b.WriteString(sql)
		b.WriteString(")")
		args = append(args, a...)
	}
	return b.String(), args, nil
}

type join struct {
	kind  string
	table string
	on    string
}

func (j join) clause() string {
	if j.on == "" {
		return j.kind + " " + j.table
	}
	return j.kind + " " + j.table + " ON " + j.on
}

// statement is the root of a compiled query. Nested builders keep the default
// question mark placeholders; render numbers them once over the whole text.
type statement struct {
	ctes []cte
	body sq.SelectBuilder
}

func (s statement) render() (string, []any, error) {
	body := s.body
	if len(s.ctes) > 0 {
		body = body.PrefixExpr(withClause(s.ctes))
	}
	sql, args, err := body.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render query: %w", err)
	}
	if args == nil {
		args = []any{}
	}
	return sql, args, nil
}

// columns adds string or Sqlizer columns in order.
func columns(b sq.SelectBuilder, cols ...any) sq.SelectBuilder {
	for _, c := range cols {
		b = b.Column(c)
	}
	return b
}

func where(b sq.SelectBuilder, preds []sq.Sqlizer) sq.SelectBuilder {
	for _, p := range preds {
		b = b.Where(p)
	}
	return b
}
