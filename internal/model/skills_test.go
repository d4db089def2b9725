package model

import "testing"

func TestSkillRoundTrip(t *testing.T) {
	// Label → token → label must be identity for every vocabulary entry.
	for _, opt := range SkillOptions {
		token := SkillToken(opt.Label)
		if token != opt.Token {
			t.Errorf("SkillToken(%q) = %q, want %q", opt.Label, token, opt.Token)
		}
		if label := SkillLabel(token); label != opt.Label {
			t.Errorf("SkillLabel(%q) = %q, want %q", token, label, opt.Label)
		}
	}
}

func TestSkillTokenUnknownLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Forklift Operation", "forklift-operation"},
		{"First Aid", "first-aid"},
		{"already-a-token", "already-a-token"},
	}

	for _, tt := range tests {
		if got := SkillToken(tt.label); got != tt.want {
			t.Errorf("SkillToken(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestSkillLabelUnknownToken(t *testing.T) {
	if got := SkillLabel("forklift-operation"); got != "forklift-operation" {
		t.Errorf("SkillLabel(unknown) = %q, want token back", got)
	}
}

func TestSkillLists(t *testing.T) {
	labels := []string{"Driving", "Translation (French)", "IT"}
	tokens := SkillTokens(labels)
	want := []string{"driving", "translation-french", "it"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("SkillTokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}

	back := SkillLabels(tokens)
	for i := range labels {
		if back[i] != labels[i] {
			t.Errorf("SkillLabels[%d] = %q, want %q", i, back[i], labels[i])
		}
	}
}

func TestValidStockReason(t *testing.T) {
	tests := []struct {
		action string
		reason string
		want   bool
	}{
		{StockAdd, "donation", true},
		{StockAdd, "purchase", true},
		{StockAdd, "assigned", false},
		{StockRemove, "assigned", true},
		{StockRemove, "lost", true},
		{StockRemove, "donation", false},
		{StockAdd, "correction", true},
		{StockRemove, "correction", true},
		{"transfer", "donation", false},
	}

	for _, tt := range tests {
		if got := ValidStockReason(tt.action, tt.reason); got != tt.want {
			t.Errorf("ValidStockReason(%q, %q) = %v, want %v", tt.action, tt.reason, got, tt.want)
		}
	}
}
