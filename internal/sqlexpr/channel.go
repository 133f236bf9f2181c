package sqlexpr

import (
	sq "github.com/Masterminds/squirrel"
)

const channel14MHz = 2484

// Bands maps each frequency band filter value to its range in MHz.
var Bands = map[string]FrequencyRange{
	"2.4GHz": {Min: 2400, Max: 2500},
	"5GHz":   {Min: 5000, Max: 5900},
	"6GHz":   {Min: 5925, Max: 7125},
}

// BandNames lists band names in ascending frequency order.
var BandNames = []string{"2.4GHz", "5GHz", "6GHz"}

// ChannelExpr derives the WiFi channel number from a frequency column, or NULL.
func ChannelExpr(freqCol string) sq.Sqlizer {
	f := freqCol
	return sq.Expr("CASE" +
		" WHEN " + f + " = 2484 THEN 14" +
		" WHEN " + f + " BETWEEN 2412 AND 2483 THEN (FLOOR((" + f + " - 2412) / 5.0) + 1)::INTEGER" +
		" WHEN " + f + " BETWEEN 5000 AND 5900 THEN FLOOR((" + f + " - 5000) / 5.0)::INTEGER" +
		" WHEN " + f + " BETWEEN 5925 AND 7125 THEN FLOOR((" + f + " - 5925) / 5.0)::INTEGER" +
		" ELSE NULL END")
}

// ChannelFromFrequency is the in-process twin of ChannelExpr.
func ChannelFromFrequency(mhz int) (int, bool) {
	switch {
	case mhz == channel14MHz:
		return 14, true
	case mhz >= 2412 && mhz < channel14MHz:
		return (mhz-2412)/5 + 1, true
	case mhz >= 5000 && mhz <= 5900:
		return (mhz - 5000) / 5, true
	case mhz >= 5925 && mhz <= 7125:
		return (mhz - 5925) / 5, true
	}
	return 0, false
}

// BandExpr matches a frequency column against one band.
func BandExpr(freqCol string, r FrequencyRange) sq.Sqlizer {
	return sq.Expr(freqCol+" BETWEEN ? AND ?", r.Min, r.Max)
}
