package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	EmployeeID string        `json:"employee_id"`
	ShipperID  *string       `json:"shipper_id,omitempty"`
	Status     string        `json:"status"`
	Freight    float64       `json:"freight"`
	OrderDate  time.Time     `json:"order_date"`
	ShippedAt  *time.Time    `json:"shipped_at,omitempty"`
	Details    []OrderDetail `json:"details,omitempty"`
}

type OrderDetail struct {
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Discount  float64 `json:"discount"`
}

// Total is the freight-inclusive order total with per-line discounts applied.
func (o *Order) Total() float64 {
	total := o.Freight
	for _, d := range o.Details {
		total += d.UnitPrice * float64(d.Quantity) * (1 - d.Discount)
	}
	return total
}

// CanTransition reports whether the status lifecycle permits moving to next.
// Orders move pending -> confirmed -> shipped and may be cancelled any time
// before they ship.
func (o *Order) CanTransition(next string) bool {
	switch next {
	case StatusConfirmed:
		return o.Status == StatusPending
	case StatusShipped:
		return o.Status == StatusConfirmed
	case StatusCancelled:
		return o.Status == StatusPending || o.Status == StatusConfirmed
	default:
		return false
	}
}
