package models

// Gender scopes for categories that run separate men/women pages.
const (
	GenderMen   = "men"
	GenderWomen = "women"
)

// SubCategoryDefinition is one grouping rendered within a category page.
// Static entries come from the registry; dynamic entries are synthesized from
// the fetched catalog and marked IsDynamic with a slug-derived, stable ID.
type SubCategoryDefinition struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Keywords  []string `json:"keywords,omitempty"` // extra matching tokens for synthesized entries
	IsDynamic bool     `json:"isDynamic,omitempty"`
}

// CategoryDefinition is one top-level service vertical as configured per site.
type CategoryDefinition struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Breadcrumb    string                  `json:"breadcrumb"`
	MatchKey      string                  `json:"-"` // token used by the category-level record filter
	GenderType    string                  `json:"genderType,omitempty"`
	StaticOnly    bool                    `json:"-"` // never synthesize sub-categories for this vertical
	SubCategories []SubCategoryDefinition `json:"subCategories"`
}

// IsDefault reports whether this is the catch-all "All Services" vertical.
func (c CategoryDefinition) IsDefault() bool {
	return c.MatchKey == ""
}

// ServiceGroup is one rendered sub-category with the records claimed by it.
type ServiceGroup struct {
	SubCategory SubCategoryDefinition `json:"subCategory"`
	Items       []ServiceRecord       `json:"items"`
}

// CategoryPage is the full response for one category-page view.
type CategoryPage struct {
	Category      CategoryDefinition      `json:"category"`
	SubCategories []SubCategoryDefinition `json:"subCategories"`
	Groups        []ServiceGroup          `json:"groups"`
}
