package sqlexpr

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	ThreatCritical = "CRITICAL"
	ThreatHigh     = "HIGH"
	ThreatMedium   = "MED"
	ThreatLow      = "LOW"
	ThreatNone     = "NONE"

	TagFalsePositive = "FALSE_POSITIVE"
	TagInvestigate   = "INVESTIGATE"
)

var ThreatLevels = []string{ThreatCritical, ThreatHigh, ThreatMedium, ThreatLow, ThreatNone}

var levelThresholds = []struct {
	min   float64
	level string
}{
	{min: 80, level: ThreatCritical},
	{min: 60, level: ThreatHigh},
	{min: 40, level: ThreatMedium},
	{min: 20, level: ThreatLow},
}

// ThreatColumns names the score and tag columns threat classification reads.
type ThreatColumns struct {
	RuleScore   string
	MLScore     string
	MLWeight    string
	MLEnabled   string
	StoredLevel string
	Tag         string
}

func ScoreColumns(scoreAlias, tagAlias string) ThreatColumns {
	return ThreatColumns{
		RuleScore:   scoreAlias + ".rule_based_score",
		MLScore:     scoreAlias + ".ml_threat_score",
		MLWeight:    scoreAlias + ".ml_weight",
		MLEnabled:   scoreAlias + ".ml_blending_enabled",
		StoredLevel: scoreAlias + ".final_threat_level",
		Tag:         tagAlias + ".threat_tag",
	}
}

func (c ThreatColumns) score() string {
	rule := "COALESCE(" + c.RuleScore + ", 0)"
	ml := "COALESCE(" + c.MLScore + ", 0)"
	w := "COALESCE(" + c.MLWeight + ", 0)"
	return "(CASE WHEN COALESCE(" + c.MLEnabled + ", FALSE) THEN " +
		rule + " * (1 - " + w + ") + " + ml + " * " + w +
		" ELSE " + rule + " END)"
}

// ThreatScoreExpr blends the rule based and ML scores when blending is on.
func ThreatScoreExpr(c ThreatColumns) sq.Sqlizer {
	return sq.Expr(c.score())
}

// ThreatLevelExpr derives the threat level, honoring analyst tags.
func ThreatLevelExpr(c ThreatColumns) sq.Sqlizer {
	tag := upperCoalesce(c.Tag)
	score := c.score()

	var b strings.Builder
	b.WriteString("CASE")
	fmt.Fprintf(&b, " WHEN %s = '%s' THEN '%s'", tag, TagFalsePositive, ThreatNone)
	fmt.Fprintf(&b, " WHEN %s = '%s' AND NULLIF(%s, '') IS NOT NULL THEN %s", tag, TagInvestigate, c.StoredLevel, c.StoredLevel)
	for _, t := range levelThresholds {
		fmt.Fprintf(&b, " WHEN %s >= %g THEN '%s'", score, t.min, t.level)
	}
	fmt.Fprintf(&b, " ELSE '%s' END", ThreatNone)

	return sq.Expr(b.String())
}

type ThreatInputs struct {
	RuleScore  float64
	MLScore    float64
	MLWeight   float64
	MLBlending bool
}

// BlendThreatScore is the in-process twin of ThreatScoreExpr.
func BlendThreatScore(in ThreatInputs) float64 {
	if !in.MLBlending {
		return in.RuleScore
	}
	return in.RuleScore*(1-in.MLWeight) + in.MLScore*in.MLWeight
}

// ThreatLevel is the in-process twin of ThreatLevelExpr. An empty stored level means none.
func ThreatLevel(score float64, tag, stored string) string {
	switch strings.ToUpper(tag) {
	case TagFalsePositive:
		return ThreatNone
	case TagInvestigate:
		if stored != "" {
			return stored
		}
	}
	for _, t := range levelThresholds {
		if score >= t.min {
			return t.level
		}
	}
	return ThreatNone
}
