package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// toDomain converts a catalog record into a domain product. Records without
// a usable identifier or name are rejected; search handling skips them
// individually instead of failing the whole page.
func toDomain(dto productDTO, now time.Time) (domain.Product, error) {
	code := strings.TrimSpace(dto.Code)
	if code == "" {
		return domain.Product{}, fmt.Errorf("record has no barcode")
	}
	if !domain.ValidBarcode(code) {
		return domain.Product{}, fmt.Errorf("invalid barcode %q", code)
	}
	name := strings.TrimSpace(dto.ProductName)
	if name == "" {
		return domain.Product{}, fmt.Errorf("record %s has no product name", code)
	}

	p := domain.Product{
		ID:          code,
		Barcode:     code,
		Name:        name,
		Brand:       strings.TrimSpace(dto.Brands),
		GenericName: strings.TrimSpace(dto.GenericName),
		Categories:  splitList(dto.Categories),
		Packaging:   strings.TrimSpace(dto.Packaging),
		Labels:      strings.TrimSpace(dto.Labels),
		Quantity:    strings.TrimSpace(dto.Quantity),
		ImageURL:    strings.TrimSpace(dto.ImageURL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, ing := range dto.Ingredients {
		if text := strings.TrimSpace(ing.Text); text != "" {
			p.Ingredients = append(p.Ingredients, text)
		}
	}

	if env := toEnvironment(dto); env != nil {
		p.Environment = env
	}

	return p, nil
}

// toEnvironment extracts optional environmental metadata, returning nil
// when the record carries none.
func toEnvironment(dto productDTO) *domain.EnvironmentInfo {
	env := &domain.EnvironmentInfo{}
	present := false

	if grade := strings.TrimSpace(dto.EcoScoreGrade); grade != "" && grade != "unknown" {
		env.EcoScoreGrade = grade
		present = true
	}
	if dto.EcoScoreScore != nil {
		v := *dto.EcoScoreScore
		env.EcoScoreValue = &v
		present = true
	}
	if len(dto.PackagingTags) > 0 {
		env.PackagingMaterials = append(env.PackagingMaterials, dto.PackagingTags...)
		present = true
	}
	if dto.IngredientsFromPalmOilN != nil && *dto.IngredientsFromPalmOilN > 0 {
		env.ContainsPalmOil = true
		present = true
	}
	if dto.EcoScoreData != nil && dto.EcoScoreData.Agribalyse != nil &&
		dto.EcoScoreData.Agribalyse.CO2Total != nil {
		v := *dto.EcoScoreData.Agribalyse.CO2Total
		env.CO2Per100g = &v
		present = true
	}

	if !present {
		return nil
	}
	return env
}

// splitList breaks the catalog's comma or semicolon separated lists into
// trimmed parts, preserving source order and duplicates.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
