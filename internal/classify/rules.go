// Package classify maps resolved products to waste categories and deposit
// verdicts. Both engines are pure functions over declarative, ordered
// keyword rules; evaluation order is load-bearing.
package classify

import (
	"strings"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// The keyword lists below are market heuristics, not a verified contract
// with the catalog provider. Matching is case-insensitive substring search.
var (
	depositKeywords = []string{"pfand", "deposit"}

	beverageKeywords = []string{"getränk", "drink", "beverage"}

	// Two-letter resin codes (pe, pp, ps) are deliberately absent: as
	// substrings they match "paper" and "pappe".
	plasticMetalKeywords = []string{
		"plastic", "plastik", "kunststoff", "pet", "pvc",
		"polyethylen", "polypropylen", "polystyrol", "tetra",
		"aluminium", "aluminum", "metall", "metal", "dose", "can", "blech",
	}

	glassKeywords = []string{"glass", "glas", "jar"}

	paperKeywords = []string{"paper", "papier", "cardboard", "pappe", "karton", "carton"}

	organicKeywords = []string{
		"bio", "organic", "biologisch", "kompostierbar",
		"compostable", "biodegradable", "verrottbar",
	}

	produceKeywords = []string{"bio", "organic", "obst", "gemüse", "fruit", "vegetable"}

	recyclabilityKeywords = []string{"recycling", "recycelbar", "recyclable"}

	depositCategoryKeywords = []string{
		"beers", "bier", "soft drinks", "softdrinks", "soft-drinks",
		"beverages", "getränke", "drinks", "carbonated drinks",
	}

	depositPackagingKeywords = []string{
		"bottle", "flasche", "can", "dose", "pfand", "deposit",
		"einweg", "mehrweg", "returnable",
	}

	depositLabelKeywords = []string{
		"pfand", "deposit", "pfandpflichtig", "pfandzeichen",
		"einwegpfand", "mehrwegpfand",
	}

	reusableKeywords  = []string{"mehrweg", "reusable"}
	singleUseKeywords = []string{"einweg", "can", "dose", "single-use"}
	beerKeywords      = []string{"beer", "bier"}
)

// packagingRule pairs an ordered keyword set with its waste category.
type packagingRule struct {
	keywords []string
	category domain.WasteCategoryID
}

// packagingRules are evaluated in order; the first matching set wins.
var packagingRules = []packagingRule{
	{plasticMetalKeywords, domain.CategoryYellowBin},
	{glassKeywords, domain.CategoryGlass},
	{paperKeywords, domain.CategoryPaper},
	{organicKeywords, domain.CategoryOrganic},
}

// Reserved EAN prefix range used for deposit containers on the German
// market. The first three barcode digits fall within [400, 439].
const (
	depositPrefixLow  = 400
	depositPrefixHigh = 439
)

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func anyCategoryContains(categories []string, keywords []string) bool {
	for _, c := range categories {
		if containsAny(c, keywords) {
			return true
		}
	}
	return false
}

func hasDepositPrefix(barcode string) bool {
	if len(barcode) < 3 {
		return false
	}
	n := 0
	for _, r := range barcode[:3] {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
	}
	return n >= depositPrefixLow && n <= depositPrefixHigh
}
