package catalog

import "strings"

// keywordRule claims a record for a sub-category when any of its keywords
// appears word-bounded in the record's classifier text and none of the
// excluded keywords do. Keeping the ladder as data means the rule set can be
// unit-tested and edited without touching the classifier's control flow.
type keywordRule struct {
	anyOf  []string
	noneOf []string
}

func (r keywordRule) matches(text string) bool {
	for _, kw := range r.noneOf {
		if containsWord(text, kw) {
			return false
		}
	}
	for _, kw := range r.anyOf {
		if containsWord(text, kw) {
			return true
		}
	}
	return false
}

// subCategoryRules is keyed by lowercased sub-category label. Word-boundary
// matching cannot see across suffixes, so inflected forms are listed
// explicitly ("install" and "installation").
var subCategoryRules = map[string]keywordRule{
	// AC
	"split ac":     {anyOf: []string{"split"}, noneOf: []string{"window"}},
	"window ac":    {anyOf: []string{"window"}},
	"installation": {anyOf: []string{"installation", "install", "uninstallation", "uninstall"}},
	"repair":       {anyOf: []string{"repair", "gas", "refill"}},
	"gas refill":   {anyOf: []string{"gas", "refill", "top up"}},

	// Salon
	"haircut":             {anyOf: []string{"haircut", "hair cut"}},
	"beard styling":       {anyOf: []string{"beard", "shave", "moustache"}},
	"facial":              {anyOf: []string{"facial", "cleanup", "clean up"}},
	"waxing":              {anyOf: []string{"waxing", "wax"}},
	"manicure & pedicure": {anyOf: []string{"manicure", "pedicure"}},
	"massage":             {anyOf: []string{"massage", "spa"}},

	// Cleaning
	"home deep cleaning":     {anyOf: []string{"deep", "full home"}},
	"bathroom cleaning":      {anyOf: []string{"bathroom", "toilet"}, noneOf: []string{"fitting", "fittings"}},
	"kitchen cleaning":       {anyOf: []string{"kitchen", "chimney"}},
	"sofa & carpet cleaning": {anyOf: []string{"sofa", "carpet", "mattress"}},

	// Electrician
	"wiring":          {anyOf: []string{"wiring", "wire", "cable"}},
	"switch & socket": {anyOf: []string{"switch", "socket", "board", "mcb"}},
	"fan":             {anyOf: []string{"fan"}},
	"lighting":        {anyOf: []string{"light", "lights", "lamp", "tube"}},

	// Plumbing
	"tap & mixer":       {anyOf: []string{"tap", "mixer", "faucet"}},
	"pipe & leakage":    {anyOf: []string{"pipe", "leak", "leakage", "blockage"}},
	"bathroom fittings": {anyOf: []string{"shower", "commode", "basin", "washbasin", "jet"}},
	"water tank":        {anyOf: []string{"tank", "motor"}},

	// Painting
	"interior painting": {anyOf: []string{"interior", "wall"}},
	"exterior painting": {anyOf: []string{"exterior"}},
	"waterproofing":     {anyOf: []string{"waterproofing", "waterproof", "seepage"}},
}

// ruleFor returns the keyword rule for a sub-category label, if one exists.
func ruleFor(label string) (keywordRule, bool) {
	r, ok := subCategoryRules[strings.ToLower(strings.TrimSpace(label))]
	return r, ok
}
