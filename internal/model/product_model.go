package model

// Product is a catalog entry on the recommendation page.
type Product struct {
	Name   string `json:"name"`
	Image  string `json:"image"`
	Price  string `json:"price"`
	Volume string `json:"volume"`
}

// ProductCategory groups catalog entries by routine step.
type ProductCategory struct {
	Category string    `json:"category"`
	Label    string    `json:"label"`
	Items    []Product `json:"items"`
}
