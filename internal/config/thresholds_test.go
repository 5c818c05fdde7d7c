package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	if th.CorrectnessFirstTurn != 8 {
		t.Errorf("expected correctness_first_turn 8, got %d", th.CorrectnessFirstTurn)
	}
	if th.EscalationGood != 24 {
		t.Errorf("expected escalation_good 24, got %d", th.EscalationGood)
	}
	if th.ScoreHigh != 70 {
		t.Errorf("expected score_high 70, got %d", th.ScoreHigh)
	}
	if th.ScoreLow != 50 {
		t.Errorf("expected score_low 50, got %d", th.ScoreLow)
	}
	if th.LoopsFixNow != 2 {
		t.Errorf("expected loops_fix_now 2, got %d", th.LoopsFixNow)
	}
	if err := th.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidate_InvalidThresholds(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Thresholds)
		wantField string
	}{
		{
			name:      "score_low above score_high",
			mutate:    func(th *Thresholds) { th.ScoreLow = 80 },
			wantField: "score_low",
		},
		{
			name:      "negative loops",
			mutate:    func(th *Thresholds) { th.LoopsFixNow = -1 },
			wantField: "loops_fix_now",
		},
		{
			name:      "escalation_good above maximum",
			mutate:    func(th *Thresholds) { th.EscalationGood = 31 },
			wantField: "escalation_good",
		},
		{
			name:      "correctness above maximum",
			mutate:    func(th *Thresholds) { th.CorrectnessFirstTurn = 11 },
			wantField: "correctness_first_turn",
		},
		{
			name:      "score_high above 100",
			mutate:    func(th *Thresholds) { th.ScoreHigh = 101 },
			wantField: "score_high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := DefaultThresholds()
			tt.mutate(&th)

			err := th.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var thresholdErr *InvalidThresholdError
			if !errors.As(err, &thresholdErr) {
				t.Fatalf("expected *InvalidThresholdError, got %T", err)
			}
			if thresholdErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, thresholdErr.Field)
			}
		})
	}
}

func TestLoadThresholds_FileWithPartialOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	content := []byte("score_high: 80\nloops_fix_now: 3\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if th.ScoreHigh != 80 {
		t.Errorf("expected score_high 80, got %d", th.ScoreHigh)
	}
	if th.LoopsFixNow != 3 {
		t.Errorf("expected loops_fix_now 3, got %d", th.LoopsFixNow)
	}
	// Omitted fields fall back to defaults
	if th.ScoreLow != 50 {
		t.Errorf("expected default score_low 50, got %d", th.ScoreLow)
	}
	if th.CorrectnessFirstTurn != 8 {
		t.Errorf("expected default correctness_first_turn 8, got %d", th.CorrectnessFirstTurn)
	}
}

func TestLoadThresholds_ExplicitZeroSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	content := []byte("loops_fix_now: 0\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th.LoopsFixNow != 0 {
		t.Errorf("explicit loops_fix_now 0 must not be defaulted, got %d", th.LoopsFixNow)
	}
	if th.ScoreHigh != 70 {
		t.Errorf("expected default score_high 70, got %d", th.ScoreHigh)
	}
}

func TestOverrides_ApplyMergesSuppliedFieldsOnly(t *testing.T) {
	scoreHigh := 80
	loops := 0
	overrides := Overrides{ScoreHigh: &scoreHigh, LoopsFixNow: &loops}

	th := overrides.Apply(DefaultThresholds())

	if th.ScoreHigh != 80 {
		t.Errorf("expected score_high 80, got %d", th.ScoreHigh)
	}
	if th.LoopsFixNow != 0 {
		t.Errorf("expected loops_fix_now 0, got %d", th.LoopsFixNow)
	}
	if th.ScoreLow != 50 || th.EscalationGood != 24 || th.CorrectnessFirstTurn != 8 {
		t.Errorf("unsupplied fields must keep base values, got %+v", th)
	}
}

func TestOverrides_ApplyEmptyIsIdentity(t *testing.T) {
	base := DefaultThresholds()
	if got := (Overrides{}).Apply(base); got != base {
		t.Errorf("empty overrides must not change the base, got %+v", got)
	}
}

func TestLoadThresholds_InvalidFileFailsFast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	content := []byte("score_high: 60\nscore_low: 65\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadThresholds(path)
	var thresholdErr *InvalidThresholdError
	if !errors.As(err, &thresholdErr) {
		t.Fatalf("expected *InvalidThresholdError, got %v", err)
	}
}

func TestLoadThresholds_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv("THRESHOLDS_CONFIG_PATH", "")

	th, err := LoadThresholds("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th != DefaultThresholds() {
		t.Errorf("expected defaults, got %+v", th)
	}
}
