package schema

// StudioMemberTable represents the 'studio.member' table
type StudioMemberTable struct {
	Table       string
	ID          string
	Email       string
	Password    string
	DisplayName string
	Phone       string
	Role        string
	PlanID      string
	IsActive    string
	LastSeenAt  string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// StudioMember is the schema definition for studio.member
var StudioMember = StudioMemberTable{
	Table:       "studio.member",
	ID:          "id",
	Email:       "email",
	Password:    "passwordhash",
	DisplayName: "displayname",
	Phone:       "phone",
	Role:        "role",
	PlanID:      "planid",
	IsActive:    "isactive",
	LastSeenAt:  "lastseenat",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t StudioMemberTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.Password, t.DisplayName, t.Phone, t.Role,
		t.PlanID, t.IsActive, t.LastSeenAt, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
