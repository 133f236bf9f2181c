package models

// Strategy names the query path chosen for a compilation.
type Strategy string

const (
	StrategyNoFilter    Strategy = "no_filter"
	StrategyNetworkOnly Strategy = "network_only"
	StrategyFull        Strategy = "full"
)

type IgnoreReason string

const (
	ReasonEnabledWithoutValue IgnoreReason = "enabled_without_value"
	ReasonUnsupportedBackend  IgnoreReason = "unsupported_backend"
	ReasonNoValidValues       IgnoreReason = "no_valid_values"
)

type AppliedFilter struct {
	Dimension Dimension `json:"dimension"`
	Field     FilterKey `json:"field"`
	Value     any       `json:"value"`
}

type IgnoredFilter struct {
	Dimension Dimension    `json:"dimension"`
	Field     FilterKey    `json:"field"`
	Reason    IgnoreReason `json:"reason"`
}

type ValidationError struct {
	Field   FilterKey `json:"field"`
	Message string    `json:"message"`
}

func (v ValidationError) Error() string {
	return v.Message
}

// QueryResult is a compiled statement with its transparency report.
type QueryResult struct {
	SQL            string          `json:"sql"`
	Params         []any           `json:"params"`
	AppliedFilters []AppliedFilter `json:"appliedFilters"`
	IgnoredFilters []IgnoredFilter `json:"ignoredFilters"`
	Warnings       []string        `json:"warnings"`
	Strategy       Strategy        `json:"strategy"`
}

type CountQuery struct {
	SQL      string   `json:"sql"`
	Params   []any    `json:"params"`
	Strategy Strategy `json:"strategy"`
}
