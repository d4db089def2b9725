package model

import "github.com/gosimple/slug"

// SkillOption pairs a stable skill token with its human-readable label.
// Stored and displayed records carry labels; edit forms carry tokens.
type SkillOption struct {
	Token string `json:"id"`
	Label string `json:"label"`
}

// SkillOptions is the fixed skill vocabulary, in display order.
var SkillOptions = []SkillOption{
	{Token: "driving", Label: "Driving"},
	{Token: "lifting", Label: "Lifting"},
	{Token: "it", Label: "IT"},
	{Token: "customer-service", Label: "Customer Service"},
	{Token: "organization", Label: "Organization"},
	{Token: "inventory", Label: "Inventory"},
	{Token: "documentation", Label: "Documentation"},
	{Token: "translation-french", Label: "Translation (French)"},
	{Token: "translation-spanish", Label: "Translation (Spanish)"},
	{Token: "translation-arabic", Label: "Translation (Arabic)"},
	{Token: "admin", Label: "Admin"},
	{Token: "maintenance", Label: "Maintenance"},
}

var (
	skillByToken = map[string]string{}
	skillByLabel = map[string]string{}
)

func init() {
	for _, opt := range SkillOptions {
		skillByToken[opt.Token] = opt.Label
		skillByLabel[opt.Label] = opt.Token
	}
}

// SkillToken converts a skill label to its token. Unknown labels degrade to a
// slugified token rather than being dropped.
func SkillToken(label string) string {
	if token, ok := skillByLabel[label]; ok {
		return token
	}
	return slug.Make(label)
}

// SkillLabel converts a skill token back to its label. Unknown tokens are
// returned as-is.
func SkillLabel(token string) string {
	if label, ok := skillByToken[token]; ok {
		return label
	}
	return token
}

// SkillTokens converts a list of labels to tokens.
func SkillTokens(labels []string) []string {
	tokens := make([]string, len(labels))
	for i, l := range labels {
		tokens[i] = SkillToken(l)
	}
	return tokens
}

// SkillLabels converts a list of tokens to labels.
func SkillLabels(tokens []string) []string {
	labels := make([]string, len(tokens))
	for i, t := range tokens {
		labels[i] = SkillLabel(t)
	}
	return labels
}
