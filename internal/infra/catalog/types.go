package catalog

// Wire types for the Open Food Facts style catalog API. The schema is an
// external contract; fields not used by the pipeline are ignored.

type productResponse struct {
	Status        int         `json:"status"`
	StatusVerbose string      `json:"status_verbose"`
	Code          string      `json:"code"`
	Product       *productDTO `json:"product"`
}

type searchResponse struct {
	Count    int          `json:"count"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Products []productDTO `json:"products"`
}

type productDTO struct {
	Code          string          `json:"code"`
	ProductName   string          `json:"product_name"`
	GenericName   string          `json:"generic_name"`
	Brands        string          `json:"brands"`
	Categories    string          `json:"categories"`
	Packaging     string          `json:"packaging"`
	PackagingTags []string        `json:"packaging_tags"`
	Quantity      string          `json:"quantity"`
	Labels        string          `json:"labels"`
	ImageURL      string          `json:"image_url"`
	Ingredients   []ingredientDTO `json:"ingredients"`

	EcoScoreGrade string        `json:"ecoscore_grade"`
	EcoScoreScore *int          `json:"ecoscore_score"`
	EcoScoreData  *ecoScoreData `json:"ecoscore_data"`

	IngredientsFromPalmOilN *int `json:"ingredients_from_palm_oil_n"`
}

type ingredientDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ecoScoreData struct {
	Agribalyse *agribalyseData `json:"agribalyse"`
}

type agribalyseData struct {
	CO2Total *float64 `json:"co2_total"`
}
