package schema

// StudioPlanTable represents the 'studio.plan' table
type StudioPlanTable struct {
	Table        string
	ID           string
	Name         string
	PriceMonthly string
	DurationDays string
	IsActive     string
	CreatedAt    string
}

// StudioPlan is the schema definition for studio.plan
var StudioPlan = StudioPlanTable{
	Table:        "studio.plan",
	ID:           "id",
	Name:         "name",
	PriceMonthly: "pricemonthly",
	DurationDays: "durationdays",
	IsActive:     "isactive",
	CreatedAt:    "createdat",
}
