package schema

// StudioAttendanceTable represents the 'studio.attendance' table
type StudioAttendanceTable struct {
	Table        string
	ID           string
	MemberID     string
	CheckedInAt  string
	CheckedOutAt string
	CreatedAt    string
}

// StudioAttendance is the schema definition for studio.attendance
var StudioAttendance = StudioAttendanceTable{
	Table:        "studio.attendance",
	ID:           "id",
	MemberID:     "memberid",
	CheckedInAt:  "checkedinat",
	CheckedOutAt: "checkedoutat",
	CreatedAt:    "createdat",
}
