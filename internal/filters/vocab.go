package filters

import (
	"maps"
	"slices"
	"strings"

	"github.com/cyclonite69/shadowcheck-static-sub002/internal/models"
	"github.com/cyclonite69/shadowcheck-static-sub002/internal/sqlexpr"
)

// RelativeWindows lists the accepted relative timeframe windows.
var RelativeWindows = []string{"24h", "7d", "30d", "90d", "all"}

// EncryptionClasses expands an encryption type into the security classes it matches.
var EncryptionClasses = map[string][]string{
	"OPEN":     {sqlexpr.SecurityOpen},
	"WEP":      {sqlexpr.SecurityWEP},
	"WPA":      {sqlexpr.SecurityWPA},
	"WPA2":     {sqlexpr.SecurityWPA2, sqlexpr.SecurityWPA2Enterprise},
	"WPA2-E":   {sqlexpr.SecurityWPA2Enterprise},
	"WPA3":     {sqlexpr.SecurityWPA3, sqlexpr.SecurityWPA3SAE, sqlexpr.SecurityWPA3Enterprise},
	"WPA3-SAE": {sqlexpr.SecurityWPA3SAE},
	"WPA3-E":   {sqlexpr.SecurityWPA3Enterprise},
	"OWE":      {sqlexpr.SecurityWPA3OWE},
	"WPA3-OWE": {sqlexpr.SecurityWPA3OWE},
	"WPS":      {sqlexpr.SecurityWPS},
	"UNKNOWN":  {sqlexpr.SecurityUnknown},
}

// InsecureClasses expands an insecure flag into security classes.
var InsecureClasses = map[string][]string{
	"open":       {sqlexpr.SecurityOpen},
	"wep":        {sqlexpr.SecurityWEP},
	"wps":        {sqlexpr.SecurityWPS},
	"deprecated": {sqlexpr.SecurityWEP, sqlexpr.SecurityWPA},
}

// SecurityFlagClasses expands a security flag into security classes.
var SecurityFlagClasses = map[string][]string{
	"insecure":   {sqlexpr.SecurityOpen, sqlexpr.SecurityWEP, sqlexpr.SecurityWPS},
	"deprecated": {sqlexpr.SecurityWEP, sqlexpr.SecurityWPA},
	"enterprise": {sqlexpr.SecurityWPA2Enterprise, sqlexpr.SecurityWPA3Enterprise},
	"personal":   {sqlexpr.SecurityWPA, sqlexpr.SecurityWPA2, sqlexpr.SecurityWPA3, sqlexpr.SecurityWPA3SAE},
	"owe":        {sqlexpr.SecurityWPA3OWE},
	"unknown":    {sqlexpr.SecurityUnknown},
}

// AuthNone matches networks classified as open instead of a capability token.
const AuthNone = "NONE"

// AuthTokens maps an auth method to the capability tokens that advertise it.
var AuthTokens = map[string][]string{
	"PSK":    {"PSK"},
	"SAE":    {"SAE"},
	"EAP":    {"EAP", "MGT"},
	"OWE":    {"OWE"},
	AuthNone: nil,
}

type vocabulary struct {
	canonical func(string) string
	allowed   []string
}

func upper(s string) string { return strings.ToUpper(s) }
func lower(s string) string { return strings.ToLower(s) }

func threatCategory(s string) string {
	s = strings.ToUpper(s)
	if s == "MEDIUM" {
		return sqlexpr.ThreatMedium
	}
	return s
}

func band(s string) string {
	switch strings.TrimSuffix(strings.ToLower(s), "ghz") {
	case "2.4":
		return "2.4GHz"
	case "5":
		return "5GHz"
	case "6":
		return "6GHz"
	}
	return s
}

var vocabularies = map[models.FilterKey]vocabulary{
	models.FilterRadioTypes:       {canonical: upper, allowed: sqlexpr.RadioTypes},
	models.FilterFrequencyBands:   {canonical: band, allowed: sqlexpr.BandNames},
	models.FilterEncryptionTypes:  {canonical: upper, allowed: sortedKeys(EncryptionClasses)},
	models.FilterAuthMethods:      {canonical: upper, allowed: sortedKeys(AuthTokens)},
	models.FilterInsecureFlags:    {canonical: lower, allowed: sortedKeys(InsecureClasses)},
	models.FilterSecurityFlags:    {canonical: lower, allowed: sortedKeys(SecurityFlagClasses)},
	models.FilterThreatCategories: {canonical: threatCategory, allowed: sqlexpr.ThreatLevels},
}

func canonicalize(key models.FilterKey, s string) string {
	if v, ok := vocabularies[key]; ok {
		return v.canonical(s)
	}
	return s
}

// ValidMembers keeps the values of a set filter that belong to its vocabulary.
func ValidMembers(key models.FilterKey, values []string) []string {
	v, ok := vocabularies[key]
	if !ok {
		return values
	}
	var valid []string
	for _, value := range values {
		for _, a := range v.allowed {
			if value == a {
				valid = append(valid, value)
				break
			}
		}
	}
	return valid
}

// Expand maps values through an expansion table, keeping first-seen order.
func Expand(table map[string][]string, values []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range values {
		for _, c := range table[v] {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
