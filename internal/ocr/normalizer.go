package ocr

import (
	"regexp"
	"strings"
)

// Recognition confuses digit lookalikes inside numeric values. The fix is
// scoped: a stray "O" right after the DPI label becomes "0", the same "O"
// anywhere else is left alone. Unmatched confusions survive normalization
// and get rejected by the extractor's validators instead.
var digitLookalikes = strings.NewReplacer(
	"O", "0", "o", "0",
	"l", "1", "I", "1", "i", "1", "|", "1",
	"Z", "2", "z", "2",
	"S", "5", "s", "5",
	"B", "8",
	"G", "6",
)

type confusionRule struct {
	labelled *regexp.Regexp // group 1: label, group 2: value to correct
}

var confusionRules = []confusionRule{
	{regexp.MustCompile(`(?i)(DPI\s*[/J]?\s*PASAPORTE\s+)([0-9OolIiZzSsBG|]+)`)},
	{regexp.MustCompile(`(?i)(EDAD\s+)([0-9OolIiZzSsBG|]{1,3})\b`)},
	{regexp.MustCompile(`(?i)(HONORARIOS\s+POR\s+PA[GC]AR\s+)([0-9OolIiZzSsBG|.,]+)`)},
}

// Normalize corrects systematic digit/letter confusions next to known field
// labels. Best effort: it never fails and leaves everything it does not
// recognize untouched.
func Normalize(text string) string {
	for _, rule := range confusionRules {
		text = rule.labelled.ReplaceAllStringFunc(text, func(m string) string {
			sub := rule.labelled.FindStringSubmatch(m)
			return sub[1] + digitLookalikes.Replace(sub[2])
		})
	}
	return text
}
