package sqlexpr

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const SignalUnknown = "unknown"

var signalBuckets = []struct {
	min   int
	label string
}{
	{min: -50, label: "excellent"},
	{min: -60, label: "good"},
	{min: -70, label: "fair"},
	{min: -80, label: "weak"},
}

const signalFloorLabel = "poor"

// SignalBucketExpr groups a dBm column into coarse strength buckets.
func SignalBucketExpr(col string) sq.Sqlizer {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE WHEN %s IS NULL THEN '%s'", col, SignalUnknown)
	for _, s := range signalBuckets {
		fmt.Fprintf(&b, " WHEN %s >= %d THEN '%s'", col, s.min, s.label)
	}
	fmt.Fprintf(&b, " ELSE '%s' END", signalFloorLabel)
	return sq.Expr(b.String())
}

func SignalBucket(dbm float64) string {
	for _, s := range signalBuckets {
		if dbm >= float64(s.min) {
			return s.label
		}
	}
	return signalFloorLabel
}
