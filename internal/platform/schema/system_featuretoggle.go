package schema

// SystemFeatureToggleTable represents the 'system.featuretoggle' table
type SystemFeatureToggleTable struct {
	Table        string
	FeatureName  string
	Enabled      string
	AllowedRoles string
	Description  string
	Category     string
	UpdatedAt    string
	CreatedAt    string
}

// SystemFeatureToggle is the schema definition for system.featuretoggle
var SystemFeatureToggle = SystemFeatureToggleTable{
	Table:        "system.featuretoggle",
	FeatureName:  "featurename",
	Enabled:      "enabled",
	AllowedRoles: "allowedroles",
	Description:  "description",
	Category:     "category",
	UpdatedAt:    "updatedat",
	CreatedAt:    "createdat",
}
