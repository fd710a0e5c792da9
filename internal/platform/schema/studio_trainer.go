package schema

// StudioTrainerTable represents the 'studio.trainer' table
type StudioTrainerTable struct {
	Table       string
	ID          string
	Email       string
	DisplayName string
	Specialty   string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
}

// StudioTrainer is the schema definition for studio.trainer
var StudioTrainer = StudioTrainerTable{
	Table:       "studio.trainer",
	ID:          "id",
	Email:       "email",
	DisplayName: "displayname",
	Specialty:   "specialty",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
