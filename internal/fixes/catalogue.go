package fixes

import (
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

// catalogueEntry is the fixed remediation guidance for one issue type.
type catalogueEntry struct {
	LikelyCause string
	Fixes       []string
}

// catalogue is declarative data, not branching logic: one entry per issue
// type, looked up after ranking.
var catalogue = map[models.IssueType]catalogueEntry{
	models.IssueObviousWrongAnswer: {
		LikelyCause: "Missing/ambiguous FAQ, retrieval misses",
		Fixes: []string{
			"Add/clarify FAQ snippet with canonical phrasing",
			"Add deterministic pattern → answer rule for common questions",
			"Retrieval tweak: boost exact-match titles/IDs for top intents",
		},
	},
	models.IssueMissedEscalation: {
		LikelyCause: "Bot keeps trying despite permissions/limited access",
		Fixes: []string{
			`Rule: "If blocked ≥1 turn by identity/billing/file access → escalate"`,
			"Add Handoff Macro with who/when/how + checklist",
			"Instrument: flag any thread where same instruction is repeated twice",
		},
	},
	models.IssueDumbQuestion: {
		LikelyCause: "Bot not reading prior turns or metadata",
		Fixes: []string{
			`Context-check rule: "Before asking, scan last 5 turns for the info"`,
			"Restrict clarifying questions to one specific ask with rationale",
			"Auto-infer common fields (email, role, district) from header when present",
		},
	},
	models.IssueRepetitive: {
		LikelyCause: "No tactic switch after a failed step",
		Fixes: []string{
			`"No-repeat" guard: after a repeat, switch to escalation or new path`,
			`Add "If X didn't work, try Y" playbooks (device, network, SSO, roster)`,
		},
	},
	models.IssueLackOfEncouragement: {
		LikelyCause: "Neutral/defensive tone, no path forward",
		Fixes: []string{
			"Add tone snippet bank with encouraging language",
			"Always pair an apology with a next step or reassuring path",
		},
	},
	models.IssueDeadEnd: {
		LikelyCause: "Final turn lacks link/step/timeline",
		Fixes: []string{
			"Footer macro: one action, one link, one timeline—always",
			"Guard: every final bot message must have actionable next step",
		},
	},
}

// Catalogue returns the remediation guidance for an issue type. The bool
// mirrors map lookup so callers can distinguish an uncovered type.
func Catalogue(t models.IssueType) (likelyCause string, recommended []string, ok bool) {
	entry, ok := catalogue[t]
	if !ok {
		return "", nil, false
	}
	fixesCopy := make([]string, len(entry.Fixes))
	copy(fixesCopy, entry.Fixes)
	return entry.LikelyCause, fixesCopy, true
}
