package catalog

import (
	"regexp"
	"strings"

	"gharseva/models"
	"gharseva/utils"

	"go.uber.org/zap"
)

// acExclusionKeywords guard the AC page against salon records that arrive
// miscategorised from the catalog source. The drop is logged so the upstream
// data problem stays visible; this is a mitigation, not a feature.
var acExclusionKeywords = []string{
	"facial", "cleanup", "manicure", "pedicure", "waxing", "salon", "massage", "haircut", "beard",
}

// overflowSubCategory holds records no configured sub-category ever claimed,
// so that nothing fetched is silently dropped from the page.
var overflowSubCategory = models.SubCategoryDefinition{
	ID:        "other-services",
	Label:     "Other Services",
	IsDynamic: true,
}

// prefixPatterns caches per-key patterns used by the category-level filter.
// The key must start at a word boundary ("ac" may begin "ac repair" but never
// match inside "facial") while suffixes stay open ("plumb" matches "plumbing").
var prefixPatterns = map[string]*regexp.Regexp{}

func init() {
	reg := DefaultRegistry()
	for _, c := range reg.All() {
		if c.MatchKey != "" {
			prefixPatterns[c.MatchKey] = compilePrefixPattern(c.MatchKey)
		}
	}
}

func compilePrefixPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(key)))
}

func containsTokenPrefix(text, key string) bool {
	re, ok := prefixPatterns[key]
	if !ok {
		re = compilePrefixPattern(key)
	}
	return re.MatchString(text)
}

// inCategory reports whether a record belongs to the active category, judged
// across all four classification fields.
func inCategory(rec models.ServiceRecord, cat models.CategoryDefinition) bool {
	if cat.IsDefault() {
		return true
	}
	return containsTokenPrefix(classifierText(rec), cat.MatchKey)
}

func hasSalonKeyword(rec models.ServiceRecord) bool {
	return containsAnyWord(classifierText(rec), acExclusionKeywords)
}

// filterForCategory is the category-level pre-pass: coarse category
// containment, gender scoping, and the AC contamination safety net.
func filterForCategory(records []models.ServiceRecord, cat models.CategoryDefinition, gender string) []models.ServiceRecord {
	logger := utils.GetLogger()
	out := make([]models.ServiceRecord, 0, len(records))
	for _, rec := range records {
		if !inCategory(rec, cat) {
			continue
		}
		if gender != "" && !AllowedForGender(rec, gender) {
			continue
		}
		if cat.ID == CategoryAC && hasSalonKeyword(rec) {
			logger.Warn("classifier: dropping salon-tagged record from AC view",
				zap.String("serviceId", rec.ID),
				zap.String("packageName", rec.PackageName))
			continue
		}
		out = append(out, rec)
	}
	return out
}

// claimsExact is the admin-intent claim: the record's serviceCategory equals
// the sub-category's label (or, for synthesized entries, the raw token the
// entry was derived from). This outranks every heuristic, so it runs as its
// own pass across all sub-categories before any keyword rule fires.
func claimsExact(sub models.SubCategoryDefinition, rec models.ServiceRecord) bool {
	sc := strings.TrimSpace(rec.ServiceCategory)
	if sc == "" {
		return false
	}
	if strings.EqualFold(sc, strings.TrimSpace(sub.Label)) {
		return true
	}
	for _, kw := range sub.Keywords {
		if strings.EqualFold(sc, kw) {
			return true
		}
	}
	return false
}

// claimsHeuristic decides whether a sub-category takes a record once the
// exact pass is exhausted: the synthesized entry's own token, the keyword
// rule table, label containment, and finally the literal "Other" catch-all.
func claimsHeuristic(sub models.SubCategoryDefinition, rec models.ServiceRecord) bool {
	label := strings.ToLower(strings.TrimSpace(sub.Label))
	text := classifierText(rec)

	for _, kw := range sub.Keywords {
		if containsWord(text, kw) {
			return true
		}
	}

	if rule, ok := ruleFor(label); ok && rule.matches(text) {
		return true
	}

	if label != "" && label != "other" {
		if strings.Contains(strings.ToLower(rec.Category), label) ||
			strings.Contains(strings.ToLower(rec.PackageName), label) {
			return true
		}
	}

	return label == "other"
}

// Classify partitions the fetched records into rendered groups. Every record
// passing the category-level filter lands in exactly one group: sub-categories
// are evaluated in registry order, first claim wins, and anything left over
// goes into the trailing "Other Services" group. The function is pure and
// deterministic for a fixed registry and input list.
func Classify(records []models.ServiceRecord, cat models.CategoryDefinition, gender string, subs []models.SubCategoryDefinition) []models.ServiceGroup {
	visible := filterForCategory(records, cat, gender)
	if len(visible) == 0 {
		return nil
	}

	shown := make(map[string]bool, len(visible))
	itemsBySub := make([][]models.ServiceRecord, len(subs))

	// Exact pass first: admin intent beats heuristics even when a
	// keyword-matching sub-category sits earlier in registry order.
	for si, sub := range subs {
		for _, rec := range visible {
			if shown[rec.ID] {
				continue
			}
			if gender != "" && !AllowedForGender(rec, gender) {
				continue
			}
			if claimsExact(sub, rec) {
				shown[rec.ID] = true
				itemsBySub[si] = append(itemsBySub[si], rec)
			}
		}
	}

	// Heuristic pass in registry order, first claim wins.
	for si, sub := range subs {
		for _, rec := range visible {
			if shown[rec.ID] {
				continue
			}
			// Gender safety re-check at sub-category granularity.
			if gender != "" && !AllowedForGender(rec, gender) {
				continue
			}
			if claimsHeuristic(sub, rec) {
				shown[rec.ID] = true
				itemsBySub[si] = append(itemsBySub[si], rec)
			}
		}
	}

	groups := make([]models.ServiceGroup, 0, len(subs)+1)
	for si, sub := range subs {
		if len(itemsBySub[si]) > 0 {
			groups = append(groups, models.ServiceGroup{SubCategory: sub, Items: itemsBySub[si]})
		}
	}

	var leftovers []models.ServiceRecord
	for _, rec := range visible {
		if !shown[rec.ID] {
			shown[rec.ID] = true
			leftovers = append(leftovers, rec)
		}
	}
	if len(leftovers) > 0 {
		groups = append(groups, models.ServiceGroup{SubCategory: overflowSubCategory, Items: leftovers})
	}

	return groups
}
