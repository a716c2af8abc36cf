package classify

import "github.com/mlehnert/binsight/internal/core/domain"

// Classify determines the waste category for a product. It is total and
// deterministic: absent text fields are treated as empty strings and the
// fallthrough result is the residual category.
//
// Rule ladder, first match wins:
//  1. deposit indicators (keywords or reserved barcode prefix + beverage)
//  2. packaging material keywords
//  3. category labels combined with packaging
//  4. label text
//  5. residual default
func Classify(p domain.Product) domain.WasteCategory {
	if id, ok := checkDepositIndicators(p); ok {
		return mustCategory(id)
	}
	if id, ok := checkPackaging(p.Packaging); ok {
		return mustCategory(id)
	}
	if id, ok := checkCategoryLabels(p); ok {
		return mustCategory(id)
	}
	if id, ok := checkLabelText(p.Labels); ok {
		return mustCategory(id)
	}
	return mustCategory(domain.CategoryResidual)
}

func checkDepositIndicators(p domain.Product) (domain.WasteCategoryID, bool) {
	if containsAny(p.Packaging, depositKeywords) || containsAny(p.Labels, depositKeywords) {
		return domain.CategoryDeposit, true
	}
	// A reserved prefix alone is too weak a signal; it must be backed by a
	// beverage category.
	if hasDepositPrefix(p.Barcode) && anyCategoryContains(p.Categories, beverageKeywords) {
		return domain.CategoryDeposit, true
	}
	return "", false
}

func checkPackaging(packaging string) (domain.WasteCategoryID, bool) {
	if packaging == "" {
		return "", false
	}
	for _, rule := range packagingRules {
		if containsAny(packaging, rule.keywords) {
			return rule.category, true
		}
	}
	return "", false
}

func checkCategoryLabels(p domain.Product) (domain.WasteCategoryID, bool) {
	if len(p.Categories) == 0 {
		return "", false
	}
	if anyCategoryContains(p.Categories, produceKeywords) &&
		containsAny(p.Packaging, organicKeywords) {
		return domain.CategoryOrganic, true
	}
	if anyCategoryContains(p.Categories, beverageKeywords) &&
		containsAny(p.Packaging, glassKeywords) {
		return domain.CategoryGlass, true
	}
	return "", false
}

func checkLabelText(labels string) (domain.WasteCategoryID, bool) {
	if labels == "" {
		return "", false
	}
	if containsAny(labels, organicKeywords) {
		return domain.CategoryOrganic, true
	}
	if containsAny(labels, recyclabilityKeywords) {
		return domain.CategoryYellowBin, true
	}
	return "", false
}

func mustCategory(id domain.WasteCategoryID) domain.WasteCategory {
	c, ok := domain.CategoryByID(id)
	if !ok {
		// The enumeration is closed; rules only reference known ids.
		c, _ = domain.CategoryByID(domain.CategoryResidual)
	}
	return c
}
