package model

// CategorySales is one row of the sales-by-category report.
type CategorySales struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	UnitsSold    int     `json:"units_sold"`
	Revenue      float64 `json:"revenue"`
}

// StatusCount is one row of the orders-per-status report.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
