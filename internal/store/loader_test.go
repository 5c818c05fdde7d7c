package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

func newLoader(dir string) *Loader {
	logger := zerolog.Nop()
	return NewLoader(dir, &logger)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_ReadsRecordsInFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conv-b.json", `{"conversation_id":"conv-b","overall_score":60,"overall_verdict":"FAIL"}`)
	writeFile(t, dir, "conv-a.json", `{"conversation_id":"conv-a","overall_score":90,"overall_verdict":"PASS"}`)
	writeFile(t, dir, "conv-c.json", `{"conversation_id":"conv-c","overall_score":75,"overall_verdict":"PASS"}`)

	records, skipped, err := newLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected no skips, got %d", skipped)
	}

	var ids []string
	for _, r := range records {
		ids = append(ids, r.ConversationID)
	}
	want := []string{"conv-a", "conv-b", "conv-c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestLoad_FilenameStemFallbackID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conv-noid.json", `{"overall_score":40,"overall_verdict":"FAIL"}`)

	records, _, err := newLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].ConversationID != "conv-noid" {
		t.Errorf("expected filename stem as id, got %+v", records)
	}
}

func TestLoad_SkipsUnparseableFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.json", `{"conversation_id":"good","overall_score":80,"overall_verdict":"PASS"}`)
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "notes.txt", "ignore me")

	records, skipped, err := newLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].ConversationID != "good" {
		t.Errorf("expected only the parseable record, got %+v", records)
	}
	if skipped != 1 {
		t.Errorf("expected 1 skipped file, got %d", skipped)
	}
}

func TestLoad_ParsesNestedFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conv-1.json", `{
		"conversation_id": "conv-1",
		"overall_score": 35,
		"overall_verdict": "FAIL",
		"flags": [
			{"issue_type": "DEAD_END", "severity": "high", "description": "no next step", "turn": 6}
		],
		"metrics": {"correctness_score": 4, "escalation_score": 10},
		"cycles_without_progress": 2,
		"prize_candidate": true,
		"prize_reason": "angry parent"
	}`)

	records, _, err := newLoader(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := records[0]
	if len(r.Flags) != 1 || r.Flags[0].IssueType != models.IssueDeadEnd || r.Flags[0].Severity != models.SeverityHigh {
		t.Errorf("flags not parsed: %+v", r.Flags)
	}
	if r.Metrics.EscalationScore != 10 || r.CyclesWithoutProgress != 2 || !r.PrizeCandidate {
		t.Errorf("scalar fields not parsed: %+v", r)
	}
	if r.PrizeReason != "angry parent" {
		t.Errorf("prize_reason not parsed: %q", r.PrizeReason)
	}
}

func TestLoad_MissingDirectoryFails(t *testing.T) {
	if _, _, err := newLoader(filepath.Join(t.TempDir(), "nope")).Load(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	records, skipped, err := newLoader(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 || skipped != 0 {
		t.Errorf("expected nothing, got %d records %d skipped", len(records), skipped)
	}
}
