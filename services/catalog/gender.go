package catalog

import (
	"regexp"
	"strings"
	"sync"

	"gharseva/models"
)

// Gender-exclusive vocabulary. A record carrying only the opposite page's
// terms is hidden from a gender-scoped Salon page; carrying terms from both
// sides keeps it visible on both.
var (
	menOnlyTerms   = []string{"men", "male", "gents", "beard", "shave", "moustache"}
	womenOnlyTerms = []string{"women", "female", "ladies", "waxing", "bridal"}
)

// wordPatterns caches compiled word-boundary patterns per term. Word-boundary
// matching is required so "men" never matches inside "moment" and "women"
// never double-counts its own "men" suffix.
var wordPatterns sync.Map

func wordPattern(term string) *regexp.Regexp {
	if v, ok := wordPatterns.Load(term); ok {
		return v.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
	wordPatterns.Store(term, re)
	return re
}

func containsWord(text, term string) bool {
	return wordPattern(term).MatchString(text)
}

func containsAnyWord(text string, terms []string) bool {
	for _, t := range terms {
		if containsWord(text, t) {
			return true
		}
	}
	return false
}

// classifierText is the haystack every keyword rule matches against.
func classifierText(rec models.ServiceRecord) string {
	return strings.ToLower(strings.Join([]string{
		rec.Category, rec.ServiceCategory, rec.PackageName, rec.Tag,
	}, " "))
}

// AllowedForGender reports whether a record may appear on a page scoped to
// the given gender. An empty gender means no scoping.
func AllowedForGender(rec models.ServiceRecord, gender string) bool {
	text := classifierText(rec)
	switch gender {
	case models.GenderWomen:
		if containsAnyWord(text, menOnlyTerms) && !containsAnyWord(text, womenOnlyTerms) {
			return false
		}
	case models.GenderMen:
		if containsAnyWord(text, womenOnlyTerms) && !containsAnyWord(text, menOnlyTerms) {
			return false
		}
	}
	return true
}
