package plan

import "time"

// Plan represents a subscription plan offered by the studio.
type Plan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PriceMonthly float64   `json:"price_monthly"`
	DurationDays int       `json:"duration_days"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"-"`
}

const (
	FieldName         = "name"
	FieldPriceMonthly = "price_monthly"
	FieldDurationDays = "duration_days"
)
