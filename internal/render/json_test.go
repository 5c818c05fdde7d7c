package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

func TestJSON_RoundTripsReport(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	if err := JSON(&buf, rep); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded models.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.RunID != rep.RunID {
		t.Errorf("run id lost: %q", decoded.RunID)
	}
	if len(decoded.Triage) != len(rep.Triage) {
		t.Errorf("triage entries lost: %d", len(decoded.Triage))
	}
	if decoded.Patterns[models.IssueDeadEnd].Count != 2 {
		t.Errorf("pattern stats lost: %+v", decoded.Patterns)
	}
}

func TestJSON_ByteStableForSameReport(t *testing.T) {
	rep := sampleReport()

	var first, second bytes.Buffer
	if err := JSON(&first, rep); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if err := JSON(&second, rep); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("same report must serialize byte-identically")
	}
}

func TestJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleReport()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"run_id\"") {
		t.Error("output should be indented for human inspection")
	}
}
