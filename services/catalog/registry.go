package catalog

import "gharseva/models"

// Well-known category IDs.
const (
	CategoryAll         = "all-services"
	CategoryAC          = "ac"
	CategorySalonWomen  = "salon-women"
	CategorySalonMen    = "salon-men"
	CategoryCleaning    = "cleaning"
	CategoryElectrician = "electrician"
	CategoryPlumbing    = "plumbing"
	CategoryPainting    = "painting"
)

// Registry is the static per-deployment category configuration. The first
// entry is the default ("All Services") definition every unmatched token
// degrades to.
type Registry struct {
	categories []models.CategoryDefinition
}

// DefaultRegistry returns the registry for this deployment.
func DefaultRegistry() *Registry {
	return &Registry{categories: []models.CategoryDefinition{
		{
			ID:         CategoryAll,
			Title:      "All Services",
			Breadcrumb: "All Services",
		},
		{
			ID:         CategoryAC,
			Title:      "AC Service",
			Breadcrumb: "AC",
			MatchKey:   "ac",
			SubCategories: []models.SubCategoryDefinition{
				{ID: "split-ac", Label: "Split AC"},
				{ID: "window-ac", Label: "Window AC"},
				{ID: "ac-installation", Label: "Installation"},
				{ID: "ac-repair", Label: "Repair"},
				{ID: "gas-refill", Label: "Gas Refill"},
			},
		},
		{
			ID:         CategorySalonWomen,
			Title:      "Salon for Women",
			Breadcrumb: "Salon",
			MatchKey:   "salon",
			GenderType: models.GenderWomen,
			StaticOnly: true,
			SubCategories: []models.SubCategoryDefinition{
				{ID: "haircut-women", Label: "Haircut"},
				{ID: "facial", Label: "Facial"},
				{ID: "waxing", Label: "Waxing"},
				{ID: "mani-pedi", Label: "Manicure & Pedicure"},
				{ID: "massage-women", Label: "Massage"},
				{ID: "other-salon-women", Label: "Other"},
			},
		},
		{
			ID:         CategorySalonMen,
			Title:      "Salon for Men",
			Breadcrumb: "Salon",
			MatchKey:   "salon",
			GenderType: models.GenderMen,
			StaticOnly: true,
			SubCategories: []models.SubCategoryDefinition{
				{ID: "haircut-men", Label: "Haircut"},
				{ID: "beard-styling", Label: "Beard Styling"},
				{ID: "facial-men", Label: "Facial"},
				{ID: "massage-men", Label: "Massage"},
				{ID: "other-salon-men", Label: "Other"},
			},
		},
		{
			ID:         CategoryCleaning,
			Title:      "Cleaning Service",
			Breadcrumb: "Cleaning",
			MatchKey:   "clean",
			SubCategories: []models.SubCategoryDefinition{
				{ID: "deep-cleaning", Label: "Home Deep Cleaning"},
				{ID: "bathroom-cleaning", Label: "Bathroom Cleaning"},
				{ID: "kitchen-cleaning", Label: "Kitchen Cleaning"},
				{ID: "sofa-carpet-cleaning", Label: "Sofa & Carpet Cleaning"},
			},
		},
		{
			ID:         CategoryElectrician,
			Title:      "Electrician Service",
			Breadcrumb: "Electrician",
			MatchKey:   "electric",
			SubCategories: []models.SubCategoryDefinition{
				{ID: "wiring", Label: "Wiring"},
				{ID: "switch-socket", Label: "Switch & Socket"},
				{ID: "fan", Label: "Fan"},
				{ID: "lighting", Label: "Lighting"},
			},
		},
		{
			ID:         CategoryPlumbing,
			Title:      "Plumbing Service",
			Breadcrumb: "Plumbing",
			MatchKey:   "plumb",
			SubCategories: []models.SubCategoryDefinition{
				{ID: "tap-mixer", Label: "Tap & Mixer"},
				{ID: "pipe-leakage", Label: "Pipe & Leakage"},
				{ID: "bathroom-fittings", Label: "Bathroom Fittings"},
				{ID: "water-tank", Label: "Water Tank"},
			},
		},
		{
			ID:         CategoryPainting,
			Title:      "Painting Service",
			Breadcrumb: "Painting",
			MatchKey:   "paint",
			SubCategories: []models.SubCategoryDefinition{
				{ID: "interior-painting", Label: "Interior Painting"},
				{ID: "exterior-painting", Label: "Exterior Painting"},
				{ID: "waterproofing", Label: "Waterproofing"},
			},
		},
	}}
}

// All returns every configured category in registry order.
func (r *Registry) All() []models.CategoryDefinition {
	return r.categories
}

// Default returns the catch-all "All Services" definition.
func (r *Registry) Default() models.CategoryDefinition {
	return r.categories[0]
}

// ByID looks up a category by its ID.
func (r *Registry) ByID(id string) (models.CategoryDefinition, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.CategoryDefinition{}, false
}

// Variants returns every category sharing a definition's MatchKey, in
// registry order. Gender-scoped siblings share one MatchKey, so resolving
// "salon" yields both the women's and the men's page definitions.
func (r *Registry) Variants(cat models.CategoryDefinition) []models.CategoryDefinition {
	if cat.MatchKey == "" {
		return []models.CategoryDefinition{cat}
	}
	var out []models.CategoryDefinition
	for _, c := range r.categories {
		if c.MatchKey == cat.MatchKey {
			out = append(out, c)
		}
	}
	return out
}

// GenderVariant returns the gender-scoped sibling of a category, if one is
// configured (e.g. the men's Salon page for a generic "salon" token).
// Categories without gender variants are returned unchanged.
func (r *Registry) GenderVariant(cat models.CategoryDefinition, gender string) models.CategoryDefinition {
	if gender == "" || cat.GenderType == gender {
		return cat
	}
	for _, c := range r.categories {
		if c.MatchKey == cat.MatchKey && c.MatchKey != "" && c.GenderType == gender {
			return c
		}
	}
	return cat
}
