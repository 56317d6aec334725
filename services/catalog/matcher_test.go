package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ExactTitle(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, CategoryAC, reg.Resolve("AC Service").ID)
	assert.Equal(t, CategoryCleaning, reg.Resolve("Cleaning Service").ID)
	assert.Equal(t, CategoryAll, reg.Resolve("All Services").ID)
}

func TestResolve_TitleMinusServiceSuffix(t *testing.T) {
	reg := DefaultRegistry()

	// "plumbing" should hit "Plumbing Service" without the suffix.
	assert.Equal(t, CategoryPlumbing, reg.Resolve("plumbing").ID)
	assert.Equal(t, CategoryElectrician, reg.Resolve("electrician").ID)
	assert.Equal(t, CategoryAC, reg.Resolve("ac").ID)
}

func TestResolve_NormalizesSlugsAndCase(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, CategoryAC, reg.Resolve("AC-Service").ID)
	assert.Equal(t, CategoryPainting, reg.Resolve("  PAINTING   SERVICE ").ID)
	assert.Equal(t, CategoryCleaning, reg.Resolve("cleaning-service").ID)
}

func TestResolve_FuzzyContainment(t *testing.T) {
	reg := DefaultRegistry()

	// Token contains the label.
	assert.Equal(t, CategoryAC, reg.Resolve("best ac service in town").ID)
	// Label contains the token.
	assert.Equal(t, CategoryPainting, reg.Resolve("paint").ID)
}

func TestResolve_FuzzySharedPrefix(t *testing.T) {
	reg := DefaultRegistry()

	// "saloon" is not a substring match either way against "salon", but the
	// two share a five-character prefix.
	got := reg.Resolve("saloon")
	assert.Equal(t, "Salon", got.Breadcrumb)
}

func TestResolve_AliasHints(t *testing.T) {
	reg := DefaultRegistry()

	assert.Equal(t, CategoryAC, reg.Resolve("cooling experts").ID)
	assert.Equal(t, CategoryCleaning, reg.Resolve("maid").ID)
	assert.Equal(t, CategoryElectrician, reg.Resolve("wire work").ID)
	assert.Equal(t, CategoryPlumbing, reg.Resolve("water problems").ID)
}

func TestResolve_UnknownFallsBackToDefault(t *testing.T) {
	reg := DefaultRegistry()

	for _, token := range []string{"", "   ", "gardening", "zzz", "pest control"} {
		got := reg.Resolve(token)
		assert.Equal(t, CategoryAll, got.ID, "token %q", token)
		assert.True(t, got.IsDefault())
	}
}

func TestResolve_Deterministic(t *testing.T) {
	reg := DefaultRegistry()

	for i := 0; i < 5; i++ {
		assert.Equal(t, reg.Resolve("saloon").ID, reg.Resolve("saloon").ID)
		assert.Equal(t, reg.Resolve("ac repair").ID, reg.Resolve("ac repair").ID)
	}
}

func TestGenderVariant(t *testing.T) {
	reg := DefaultRegistry()

	salon := reg.Resolve("salon")
	men := reg.GenderVariant(salon, "men")
	women := reg.GenderVariant(salon, "women")

	assert.Equal(t, CategorySalonMen, men.ID)
	assert.Equal(t, CategorySalonWomen, women.ID)

	// Non-gendered categories are returned unchanged.
	ac, _ := reg.ByID(CategoryAC)
	assert.Equal(t, CategoryAC, reg.GenderVariant(ac, "men").ID)
}
