package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds are the injected cut points for classification and KPI
// derivation. The engine never reads these from the environment itself;
// callers load them here and hand them down.
type Thresholds struct {
	CorrectnessFirstTurn int `yaml:"correctness_first_turn" json:"correctness_first_turn"` // out of 10
	EscalationGood       int `yaml:"escalation_good" json:"escalation_good"`               // out of 30
	ScoreHigh            int `yaml:"score_high" json:"score_high"`                         // PASS cut point
	ScoreLow             int `yaml:"score_low" json:"score_low"`                           // HIGH-priority cut point
	LoopsFixNow          int `yaml:"loops_fix_now" json:"loops_fix_now"`
}

// InvalidThresholdError reports a threshold outside its valid domain.
// Raised before any aggregation runs.
type InvalidThresholdError struct {
	Field  string
	Detail string
}

func (e *InvalidThresholdError) Error() string {
	return fmt.Sprintf("invalid threshold %s: %s", e.Field, e.Detail)
}

// DefaultThresholds returns the production defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CorrectnessFirstTurn: 8,
		EscalationGood:       24,
		ScoreHigh:            70,
		ScoreLow:             50,
		LoopsFixNow:          2,
	}
}

// Overrides carries per-run threshold replacements. Pointer fields
// distinguish "not supplied" from an explicit zero, so a caller setting
// loops_fix_now to 0 is honoured rather than defaulted away.
type Overrides struct {
	CorrectnessFirstTurn *int `yaml:"correctness_first_turn" json:"correctness_first_turn,omitempty"`
	EscalationGood       *int `yaml:"escalation_good" json:"escalation_good,omitempty"`
	ScoreHigh            *int `yaml:"score_high" json:"score_high,omitempty"`
	ScoreLow             *int `yaml:"score_low" json:"score_low,omitempty"`
	LoopsFixNow          *int `yaml:"loops_fix_now" json:"loops_fix_now,omitempty"`
}

// Apply returns base with the supplied fields replaced. Validation is
// the caller's concern.
func (o Overrides) Apply(base Thresholds) Thresholds {
	if o.CorrectnessFirstTurn != nil {
		base.CorrectnessFirstTurn = *o.CorrectnessFirstTurn
	}
	if o.EscalationGood != nil {
		base.EscalationGood = *o.EscalationGood
	}
	if o.ScoreHigh != nil {
		base.ScoreHigh = *o.ScoreHigh
	}
	if o.ScoreLow != nil {
		base.ScoreLow = *o.ScoreLow
	}
	if o.LoopsFixNow != nil {
		base.LoopsFixNow = *o.LoopsFixNow
	}
	return base
}

// LoadThresholds reads a YAML thresholds file, fills omitted fields from
// the defaults and validates the result. An empty path falls back to
// THRESHOLDS_CONFIG_PATH, and to pure defaults when neither is set.
func LoadThresholds(path string) (Thresholds, error) {
	if path == "" {
		path = os.Getenv("THRESHOLDS_CONFIG_PATH")
	}
	if path == "" {
		return DefaultThresholds(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds config: %w", err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Thresholds{}, fmt.Errorf("parse thresholds config: %w", err)
	}

	th := overrides.Apply(DefaultThresholds())
	if err := th.Validate(); err != nil {
		return Thresholds{}, err
	}
	return th, nil
}

// Validate fails fast on thresholds outside their valid domain.
func (th Thresholds) Validate() error {
	if th.CorrectnessFirstTurn < 0 || th.CorrectnessFirstTurn > 10 {
		return &InvalidThresholdError{Field: "correctness_first_turn", Detail: fmt.Sprintf("%d outside [0,10]", th.CorrectnessFirstTurn)}
	}
	if th.EscalationGood < 0 || th.EscalationGood > 30 {
		return &InvalidThresholdError{Field: "escalation_good", Detail: fmt.Sprintf("%d outside [0,30]", th.EscalationGood)}
	}
	if th.ScoreHigh < 0 || th.ScoreHigh > 100 {
		return &InvalidThresholdError{Field: "score_high", Detail: fmt.Sprintf("%d outside [0,100]", th.ScoreHigh)}
	}
	if th.ScoreLow < 0 || th.ScoreLow > 100 {
		return &InvalidThresholdError{Field: "score_low", Detail: fmt.Sprintf("%d outside [0,100]", th.ScoreLow)}
	}
	if th.ScoreLow > th.ScoreHigh {
		return &InvalidThresholdError{Field: "score_low", Detail: fmt.Sprintf("score_low %d exceeds score_high %d", th.ScoreLow, th.ScoreHigh)}
	}
	if th.LoopsFixNow < 0 {
		return &InvalidThresholdError{Field: "loops_fix_now", Detail: "negative"}
	}
	return nil
}
