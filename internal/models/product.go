package models

// Product is one entry of the static catalog document. The catalog is
// read-only external input; products are never created or edited here.
type Product struct {
	Name           string  `json:"name"`
	ScientificName string  `json:"scientificName,omitempty"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	Season         string  `json:"season"`
	Difficulty     string  `json:"difficulty"`
	Description    string  `json:"description,omitempty"`
	IsBouquet      bool    `json:"isBouquet"`
	Category       string  `json:"category,omitempty"`
}

// CatalogDocument is the shape of the product JSON file.
type CatalogDocument struct {
	Products []Product `json:"products"`
}
