package sqlexpr

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	SecurityOpen           = "OPEN"
	SecurityWEP            = "WEP"
	SecurityWPA            = "WPA"
	SecurityWPA2           = "WPA2"
	SecurityWPA2Enterprise = "WPA2-E"
	SecurityWPA3           = "WPA3"
	SecurityWPA3SAE        = "WPA3-SAE"
	SecurityWPA3Enterprise = "WPA3-E"
	SecurityWPA3OWE        = "WPA3-OWE"
	SecurityWPS            = "WPS"
	SecurityUnknown        = "Unknown"
)

// SecurityClasses lists every value the classifier can produce.
var SecurityClasses = []string{
	SecurityOpen,
	SecurityWEP,
	SecurityWPA,
	SecurityWPA2,
	SecurityWPA2Enterprise,
	SecurityWPA3,
	SecurityWPA3SAE,
	SecurityWPA3Enterprise,
	SecurityWPA3OWE,
	SecurityWPS,
	SecurityUnknown,
}

type matchKind int

const (
	matchTokens matchKind = iota
	matchEmpty
	matchBareMarkers
	matchLabel
)

// securityRule matches when every allOf group has at least one token present
// and no noneOf token is present.
type securityRule struct {
	class  string
	kind   matchKind
	allOf  [][]string
	noneOf []string
}

var (
	wpa3Tokens       = []string{"WPA3", "SAE"}
	wpa2Tokens       = []string{"WPA2", "RSN"}
	enterpriseTokens = []string{"EAP", "MGT"}
	bareMarkers      = []string{"[ESS]", "[IBSS]"}
)

// Order matters: later tokens are substrings of earlier ones. Label rules come
// first so an already classified value, such as the explorer view's security
// column, keeps its class.
var securityRules = append(labelRules(), []securityRule{
	{class: SecurityOpen, kind: matchEmpty},
	{class: SecurityWEP, allOf: [][]string{{"WEP"}}},
	{class: SecurityOpen, kind: matchBareMarkers},
	{class: SecurityWPA3OWE, allOf: [][]string{{"RSN-OWE"}}},
	{class: SecurityWPA3SAE, allOf: [][]string{{"RSN-SAE"}}},
	{class: SecurityWPA3Enterprise, allOf: [][]string{wpa3Tokens, enterpriseTokens}},
	{class: SecurityWPA3, allOf: [][]string{wpa3Tokens}},
	{class: SecurityWPA2Enterprise, allOf: [][]string{wpa2Tokens, enterpriseTokens}},
	{class: SecurityWPA2, allOf: [][]string{wpa2Tokens}},
	{class: SecurityWPA, allOf: [][]string{{"WPA-"}}, noneOf: []string{"WPA2"}},
	{class: SecurityWPA, allOf: [][]string{{"WPA"}}, noneOf: []string{"WPA2", "WPA3", "RSN"}},
	{class: SecurityWPS, allOf: [][]string{{"WPS"}}, noneOf: []string{"WPA", "RSN"}},
	{class: SecurityWPA2, allOf: [][]string{{"CCMP", "TKIP", "AES"}}},
}...)

func labelRules() []securityRule {
	rules := make([]securityRule, 0, len(SecurityClasses))
	for _, c := range SecurityClasses {
		rules = append(rules, securityRule{class: c, kind: matchLabel})
	}
	return rules
}

func (r securityRule) sql(caps string) string {
	switch r.kind {
	case matchLabel:
		return "TRIM(" + caps + ") = '" + strings.ToUpper(r.class) + "'"
	case matchEmpty:
		return "TRIM(" + caps + ") = ''"
	case matchBareMarkers:
		stripped := caps
		for _, m := range bareMarkers {
			stripped = "REPLACE(" + stripped + ", '" + m + "', '')"
		}
		return "TRIM(" + stripped + ") = ''"
	}

	parts := make([]string, 0, len(r.allOf)+len(r.noneOf))
	for _, group := range r.allOf {
		parts = append(parts, likeAny(caps, group))
	}
	for _, t := range r.noneOf {
		parts = append(parts, caps+" NOT LIKE '%"+t+"%'")
	}
	return strings.Join(parts, " AND ")
}

func (r securityRule) matches(caps string) bool {
	switch r.kind {
	case matchLabel:
		return strings.Trim(caps, " ") == strings.ToUpper(r.class)
	case matchEmpty:
		return strings.Trim(caps, " ") == ""
	case matchBareMarkers:
		stripped := caps
		for _, m := range bareMarkers {
			stripped = strings.ReplaceAll(stripped, m, "")
		}
		return strings.Trim(stripped, " ") == ""
	}

	for _, group := range r.allOf {
		if !containsAny(caps, group) {
			return false
		}
	}
	return !containsAny(caps, r.noneOf)
}

// SecurityExpr classifies a capabilities column into a security class.
func SecurityExpr(capabilitiesCol string) sq.Sqlizer {
	caps := upperCoalesce(capabilitiesCol)

	var b strings.Builder
	b.WriteString("CASE")
	for _, r := range securityRules {
		fmt.Fprintf(&b, " WHEN %s THEN '%s'", r.sql(caps), r.class)
	}
	fmt.Fprintf(&b, " ELSE '%s' END", SecurityUnknown)

	return sq.Expr(b.String())
}

// ClassifySecurity is the in-process twin of SecurityExpr.
func ClassifySecurity(capabilities string) string {
	caps := strings.ToUpper(capabilities)
	for _, r := range securityRules {
		if r.matches(caps) {
			return r.class
		}
	}
	return SecurityUnknown
}
