package classify

import (
	"testing"

	"github.com/mlehnert/binsight/internal/core/domain"
)

func TestClassify_RuleLadder(t *testing.T) {
	tests := []struct {
		name    string
		product domain.Product
		want    domain.WasteCategoryID
	}{
		// Step 1: deposit indicators
		{
			name:    "pfand keyword in packaging",
			product: domain.Product{Packaging: "Pfandflasche"},
			want:    domain.CategoryDeposit,
		},
		{
			name:    "deposit keyword in labels beats plastic packaging",
			product: domain.Product{Packaging: "Kunststoff", Labels: "Pfandpflichtig"},
			want:    domain.CategoryDeposit,
		},
		{
			name: "reserved barcode prefix with beverage category",
			product: domain.Product{
				Barcode:    "4001234567890",
				Categories: []string{"Getränke"},
			},
			want: domain.CategoryDeposit,
		},
		{
			name: "reserved barcode prefix without beverage category",
			product: domain.Product{
				Barcode:    "4001234567890",
				Categories: []string{"Süßwaren"},
				Packaging:  "Karton",
			},
			want: domain.CategoryPaper,
		},
		// Step 2: packaging materials, first matching set wins
		{
			name:    "plastic packaging",
			product: domain.Product{Packaging: "Kunststoff"},
			want:    domain.CategoryYellowBin,
		},
		{
			name:    "metal can packaging",
			product: domain.Product{Packaging: "Aluminium-Dose"},
			want:    domain.CategoryYellowBin,
		},
		{
			name:    "glass packaging",
			product: domain.Product{Packaging: "Glasflasche"},
			want:    domain.CategoryGlass,
		},
		{
			name:    "paper packaging",
			product: domain.Product{Packaging: "Pappe"},
			want:    domain.CategoryPaper,
		},
		{
			name:    "compostable packaging",
			product: domain.Product{Packaging: "kompostierbar"},
			want:    domain.CategoryOrganic,
		},
		{
			name:    "packaging beats label text",
			product: domain.Product{Packaging: "glas", Labels: "bio"},
			want:    domain.CategoryGlass,
		},
		{
			name:    "plastic set tested before glass set",
			product: domain.Product{Packaging: "Plastikflasche mit Glasanteil"},
			want:    domain.CategoryYellowBin,
		},
		// Category labels alone never classify; they need packaging support
		{
			name: "produce category with organic packaging",
			product: domain.Product{
				Categories: []string{"Obst"},
				Packaging:  "unverpackt biologisch",
			},
			want: domain.CategoryOrganic,
		},
		{
			name: "produce category without organic packaging falls through",
			product: domain.Product{
				Categories: []string{"Obst"},
			},
			want: domain.CategoryResidual,
		},
		{
			name: "beverage category without any packaging falls through",
			product: domain.Product{
				Categories: []string{"Getränke"},
			},
			want: domain.CategoryResidual,
		},
		// Step 4: label text
		{
			name:    "organic label only",
			product: domain.Product{Labels: "EU Bio Siegel"},
			want:    domain.CategoryOrganic,
		},
		{
			name:    "recyclable label only",
			product: domain.Product{Labels: "recycelbar"},
			want:    domain.CategoryYellowBin,
		},
		// Step 5: default
		{
			name:    "empty product",
			product: domain.Product{},
			want:    domain.CategoryResidual,
		},
		{
			name:    "no matching text",
			product: domain.Product{Name: "Mystery", Packaging: "unbekannt"},
			want:    domain.CategoryResidual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.product)
			if got.ID != tt.want {
				t.Errorf("Classify() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	p := domain.Product{
		Barcode:    "4001234567890",
		Packaging:  "Glasflasche",
		Categories: []string{"Getränke"},
		Labels:     "bio",
	}
	first := Classify(p)
	second := Classify(p)
	if first.ID != second.ID {
		t.Errorf("Classify not deterministic: %s vs %s", first.ID, second.ID)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	upper := Classify(domain.Product{Packaging: "KUNSTSTOFF"})
	lower := Classify(domain.Product{Packaging: "kunststoff"})
	if upper.ID != domain.CategoryYellowBin || lower.ID != domain.CategoryYellowBin {
		t.Errorf("expected yellow bin for both cases, got %s and %s", upper.ID, lower.ID)
	}
}

func TestClassify_ResinCodeFalsePositives(t *testing.T) {
	// "paper" and "pappe" must not trip plastic matching via two-letter
	// resin codes.
	for _, packaging := range []string{"paper", "Pappe"} {
		got := Classify(domain.Product{Packaging: packaging})
		if got.ID != domain.CategoryPaper {
			t.Errorf("Classify(packaging=%q) = %s, want %s", packaging, got.ID, domain.CategoryPaper)
		}
	}
}

func TestClassify_ReturnsFullCategory(t *testing.T) {
	got := Classify(domain.Product{Packaging: "Glas"})
	if got.NameDE == "" || got.NameEN == "" || got.ColorHex == "" {
		t.Errorf("expected populated category, got %+v", got)
	}
}
