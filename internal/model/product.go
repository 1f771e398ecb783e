package model

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CategoryID   string  `json:"category_id"`
	UnitPrice    float64 `json:"unit_price"`
	UnitsInStock int     `json:"units_in_stock"`
	Discontinued bool    `json:"discontinued"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
