package catalog

import (
	"strings"
	"unicode"

	"gharseva/models"
)

// junkLabels are serviceCategory values that never deserve their own group.
var junkLabels = map[string]bool{
	"test":      true,
	"dummy":     true,
	"none":      true,
	"null":      true,
	"undefined": true,
	"category":  true,
	"service":   true,
	"services":  true,
}

// renameOverrides map raw serviceCategory tokens to presentable labels.
var renameOverrides = map[string]string{
	"fan":     "Fan Services",
	"geyser":  "Geyser Services",
	"chimney": "Chimney Services",
	"ro":      "RO & Water Purifier",
}

// contextRenames disambiguate tokens that mean different things per vertical:
// a "switch" candidate under Electrician is mains wiring work, under Plumbing
// it is valve work; likewise "tap".
var contextRenames = map[string]map[string]string{
	CategoryElectrician: {
		"switch": "Switch & Socket Services",
		"tap":    "Sensor Tap Wiring",
	},
	CategoryPlumbing: {
		"switch": "Valve & Stopcock Services",
		"tap":    "Tap & Faucet Services",
	},
}

// Slugify converts a label to a URL-safe, deterministic identifier fragment.
func Slugify(label string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func rejectCandidate(key string, knownLabels map[string]bool) bool {
	if knownLabels[key] {
		return true
	}
	if len(key) < 3 {
		return true
	}
	if junkLabels[key] {
		return true
	}
	if strings.HasSuffix(key, "&") {
		return true
	}
	return !hasLetter(key)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func displayLabel(cat models.CategoryDefinition, key string) string {
	if byCat, ok := contextRenames[cat.ID]; ok {
		if label, ok := byCat[key]; ok {
			return label
		}
	}
	if label, ok := renameOverrides[key]; ok {
		return label
	}
	return titleCase(key)
}

// SynthesizeSubCategories appends dynamic sub-categories for admin-set
// serviceCategory values the static registry does not know about. IDs derive
// from the slugified display label, so re-running over an unchanged catalog
// produces identical entries. Categories flagged StaticOnly are returned
// untouched.
func SynthesizeSubCategories(cat models.CategoryDefinition, records []models.ServiceRecord) []models.SubCategoryDefinition {
	if cat.StaticOnly {
		return cat.SubCategories
	}

	subs := append([]models.SubCategoryDefinition(nil), cat.SubCategories...)

	knownLabels := make(map[string]bool, len(subs))
	for _, sub := range subs {
		knownLabels[strings.ToLower(sub.Label)] = true
	}

	seen := make(map[string]bool)
	for _, rec := range records {
		if !inCategory(rec, cat) {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(rec.ServiceCategory))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		if rejectCandidate(key, knownLabels) {
			continue
		}

		label := displayLabel(cat, key)
		if knownLabels[strings.ToLower(label)] {
			continue
		}
		knownLabels[strings.ToLower(label)] = true

		subs = append(subs, models.SubCategoryDefinition{
			ID:        "dyn-" + Slugify(label),
			Label:     label,
			Keywords:  []string{key},
			IsDynamic: true,
		})
	}

	return subs
}
