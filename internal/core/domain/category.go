package domain

// WasteCategoryID identifies one of the fixed waste streams.
type WasteCategoryID string

const (
	CategoryDeposit   WasteCategoryID = "pfand"
	CategoryYellowBin WasteCategoryID = "gelbe_tonne"
	CategoryGlass     WasteCategoryID = "glas"
	CategoryPaper     WasteCategoryID = "papier"
	CategoryOrganic   WasteCategoryID = "bio"
	CategoryResidual  WasteCategoryID = "restmuell"
)

// WasteCategory describes a waste stream with localized texts and
// presentation hints. The set of categories is closed.
type WasteCategory struct {
	ID            WasteCategoryID
	NameDE        string
	NameEN        string
	DescriptionDE string
	DescriptionEN string
	Icon          string
	ColorHex      string
	SortOrder     int
}

var categories = []WasteCategory{
	{
		ID:            CategoryDeposit,
		NameDE:        "Pfand",
		NameEN:        "Deposit",
		DescriptionDE: "Dieses Produkt hat Pfand. Bitte zurückgeben.",
		DescriptionEN: "This product has a deposit. Please return it.",
		Icon:          "ic_pfand",
		ColorHex:      "#FF9800",
		SortOrder:     1,
	},
	{
		ID:            CategoryYellowBin,
		NameDE:        "Gelbe Tonne",
		NameEN:        "Yellow Bin",
		DescriptionDE: "Verpackungen aus Kunststoff, Metall oder Verbundstoffen gehören in die Gelbe Tonne.",
		DescriptionEN: "Packaging made of plastic, metal or composite materials belongs in the yellow bin.",
		Icon:          "ic_gelbe_tonne",
		ColorHex:      "#FFEB3B",
		SortOrder:     2,
	},
	{
		ID:            CategoryGlass,
		NameDE:        "Glas",
		NameEN:        "Glass",
		DescriptionDE: "Glasflaschen und -behälter gehören in den Glascontainer. Bitte nach Farben trennen.",
		DescriptionEN: "Glass bottles and containers belong in the glass container. Please separate by color.",
		Icon:          "ic_glas",
		ColorHex:      "#2196F3",
		SortOrder:     3,
	},
	{
		ID:            CategoryPaper,
		NameDE:        "Papier",
		NameEN:        "Paper",
		DescriptionDE: "Papier und Pappe gehören in die Papiertonne oder den Altpapiercontainer.",
		DescriptionEN: "Paper and cardboard belong in the paper bin or paper recycling container.",
		Icon:          "ic_papier",
		ColorHex:      "#4CAF50",
		SortOrder:     4,
	},
	{
		ID:            CategoryOrganic,
		NameDE:        "Bio",
		NameEN:        "Organic",
		DescriptionDE: "Biologisch abbaubare Abfälle gehören in die Biotonne.",
		DescriptionEN: "Biodegradable waste belongs in the organic waste bin.",
		Icon:          "ic_bio",
		ColorHex:      "#8BC34A",
		SortOrder:     5,
	},
	{
		ID:            CategoryResidual,
		NameDE:        "Restmüll",
		NameEN:        "Residual Waste",
		DescriptionDE: "Nicht recycelbare Abfälle gehören in die Restmülltonne.",
		DescriptionEN: "Non-recyclable waste belongs in the residual waste bin.",
		Icon:          "ic_restmuell",
		ColorHex:      "#757575",
		SortOrder:     6,
	},
}

// AllCategories returns the closed category set in sort order.
func AllCategories() []WasteCategory {
	out := make([]WasteCategory, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by identifier.
func CategoryByID(id WasteCategoryID) (WasteCategory, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return WasteCategory{}, false
}
