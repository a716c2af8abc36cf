package domain

import "time"

// Product is an immutable snapshot of a resolved catalog product.
// Field changes produce a new value with a refreshed UpdatedAt.
type Product struct {
	ID          string
	Barcode     string
	Name        string
	Brand       string
	GenericName string
	Categories  []string
	Packaging   string
	Labels      string
	Ingredients []string
	Quantity    string
	ImageURL    string
	Environment *EnvironmentInfo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EnvironmentInfo holds optional environmental metadata from the catalog.
// All fields are null-safe; absent data stays zero-valued.
type EnvironmentInfo struct {
	EcoScoreGrade      string
	EcoScoreValue      *int
	PackagingMaterials []string
	ContainsPalmOil    bool
	CO2Per100g         *float64
}

// Touch returns a copy of the product with a refreshed update timestamp.
func (p Product) Touch(now time.Time) Product {
	p.UpdatedAt = now
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	return p
}

// ValidBarcode reports whether s is a plausible EAN/UPC barcode:
// a decimal digit string of length 7 to 13.
func ValidBarcode(s string) bool {
	if len(s) < 7 || len(s) > 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
