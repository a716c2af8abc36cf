package classify

import "github.com/mlehnert/binsight/internal/core/domain"

// CheckDeposit determines the deposit verdict for a product. Detection
// stops at the first matching signal; amount inference always re-scans all
// fields. Return locations are filled by an external location service, not
// here.
func CheckDeposit(p domain.Product) domain.DepositVerdict {
	verdict := domain.DepositVerdict{ReturnLocations: []string{}}

	switch {
	case hasDepositPrefix(p.Barcode) && anyCategoryContains(p.Categories, beverageKeywords):
		verdict.HasDeposit = true
	case anyCategoryContains(p.Categories, depositCategoryKeywords):
		verdict.HasDeposit = true
	case containsAny(p.Packaging, depositPackagingKeywords):
		verdict.HasDeposit = true
	case containsAny(p.Labels, depositLabelKeywords):
		verdict.HasDeposit = true
	}

	if verdict.HasDeposit {
		verdict.AmountCents = inferAmountCents(p)
		verdict.AmountKnown = true
	}
	return verdict
}

// inferAmountCents picks the published deposit amount that best matches the
// packaging. Single-use is the conservative fallback when the packaging
// gives no hint.
func inferAmountCents(p domain.Product) int {
	if containsAny(p.Packaging, reusableKeywords) {
		if anyCategoryContains(p.Categories, beerKeywords) ||
			containsAny(p.Name, beerKeywords) {
			return domain.DepositReusableBeerCents
		}
		return domain.DepositReusableOtherCents
	}
	if containsAny(p.Packaging, singleUseKeywords) {
		return domain.DepositSingleUseCents
	}
	return domain.DepositSingleUseCents
}
