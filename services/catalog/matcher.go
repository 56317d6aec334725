package catalog

import (
	"strings"

	"gharseva/models"
)

// aliasHints map loose incoming tokens to a category when neither the exact
// nor the fuzzy pass finds anything. Evaluated in order, first hit wins.
var aliasHints = []struct {
	keywords   []string
	categoryID string
}{
	{[]string{"ac", "cool"}, CategoryAC},
	{[]string{"maid", "clean"}, CategoryCleaning},
	{[]string{"wire", "electric"}, CategoryElectrician},
	{[]string{"water", "plumb"}, CategoryPlumbing},
	{[]string{"paint"}, CategoryPainting},
}

// normalizeToken lowercases, trims and replaces hyphens so URL slugs,
// search queries and nav labels all compare the same way.
func normalizeToken(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Resolve maps a free-text category token to the best-matching configured
// category. It never fails: unmatched tokens degrade to the default
// "All Services" definition.
func (r *Registry) Resolve(token string) models.CategoryDefinition {
	norm := normalizeToken(token)
	if norm == "" {
		return r.Default()
	}

	// Exact pass: the token is the title, or the title minus the " service"
	// suffix ("plumbing" vs "Plumbing Service").
	for _, c := range r.categories {
		title := normalizeToken(c.Title)
		if title == norm || title == norm+" service" {
			return c
		}
	}

	// Fuzzy pass: substring containment either way, or a shared prefix of at
	// least four characters, against title and breadcrumb. Handles truncation
	// and near-misses like "saloon" / "Salon".
	for _, c := range r.categories {
		for _, label := range []string{normalizeToken(c.Title), normalizeToken(c.Breadcrumb)} {
			if label == "" {
				continue
			}
			if strings.Contains(norm, label) || strings.Contains(label, norm) {
				return c
			}
			if sharedPrefixLen(norm, label) >= 4 {
				return c
			}
		}
	}

	// Alias pass: keyword hints for tokens that share no text with any label.
	for _, hint := range aliasHints {
		for _, kw := range hint.keywords {
			if strings.Contains(norm, kw) {
				if c, ok := r.ByID(hint.categoryID); ok {
					return c
				}
			}
		}
	}

	return r.Default()
}

func sharedPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
