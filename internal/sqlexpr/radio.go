package sqlexpr

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	RadioWiFi      = "W"
	RadioBLE       = "E"
	RadioBluetooth = "B"
	RadioCellular  = "L"
	RadioGSM       = "G"
	RadioNR        = "N"
	RadioUnknown   = "?"
)

// RadioTypes lists every radio type token a stored row or the classifier can carry.
var RadioTypes = []string{RadioWiFi, RadioBLE, RadioBluetooth, RadioCellular, RadioGSM, RadioNR, RadioUnknown}

type FrequencyRange struct {
	Min int
	Max int
}

func (r FrequencyRange) Contains(mhz int) bool {
	return mhz >= r.Min && mhz <= r.Max
}

var wifiRanges = []FrequencyRange{
	{Min: 2412, Max: 2484},
	{Min: 5000, Max: 5900},
	{Min: 5925, Max: 7125},
}

// capabilityRadios is consulted only when neither a stored type nor a WiFi frequency is known.
var capabilityRadios = []struct {
	radio  string
	tokens []string
}{
	{radio: RadioBLE, tokens: []string{"BLE", "BTLE"}},
	{radio: RadioBluetooth, tokens: []string{"BLUETOOTH"}},
	{radio: RadioCellular, tokens: []string{"LTE", "4G", "5G", "NR", "3GPP"}},
}

// RadioColumns names the columns radio type inference reads.
type RadioColumns struct {
	Type         string
	Frequency    string
	Capabilities string
}

// ObservationRadio returns the radio columns of an observation row.
func ObservationRadio(alias string) RadioColumns {
	return RadioColumns{
		Type:         alias + ".radio_type",
		Frequency:    alias + ".radio_frequency",
		Capabilities: alias + ".radio_capabilities",
	}
}

// NetworkRadio returns the radio columns of the network explorer view.
func NetworkRadio(alias string) RadioColumns {
	return RadioColumns{
		Type:         alias + ".type",
		Frequency:    alias + ".frequency",
		Capabilities: alias + ".security",
	}
}

// RadioTypeExpr classifies a row into a radio type token. The unknown token is
// bound rather than inlined since it collides with the placeholder marker.
func RadioTypeExpr(c RadioColumns) sq.Sqlizer {
	caps := upperCoalesce(c.Capabilities)

	var b strings.Builder
	b.WriteString("CASE")
	fmt.Fprintf(&b, " WHEN NULLIF(TRIM(%s), '') IS NOT NULL THEN UPPER(TRIM(%s))", c.Type, c.Type)
	for _, r := range wifiRanges {
		fmt.Fprintf(&b, " WHEN %s BETWEEN %d AND %d THEN '%s'", c.Frequency, r.Min, r.Max, RadioWiFi)
	}
	for _, cr := range capabilityRadios {
		fmt.Fprintf(&b, " WHEN %s THEN '%s'", likeAny(caps, cr.tokens), cr.radio)
	}
	b.WriteString(" ELSE ? END")

	return sq.Expr(b.String(), RadioUnknown)
}

// InferRadioType is the in-process twin of RadioTypeExpr. A zero frequency means unknown.
func InferRadioType(stored string, frequency int, capabilities string) string {
	if s := strings.Trim(stored, " "); s != "" {
		return strings.ToUpper(s)
	}
	for _, r := range wifiRanges {
		if r.Contains(frequency) {
			return RadioWiFi
		}
	}
	caps := strings.ToUpper(capabilities)
	for _, cr := range capabilityRadios {
		if containsAny(caps, cr.tokens) {
			return cr.radio
		}
	}
	return RadioUnknown
}
