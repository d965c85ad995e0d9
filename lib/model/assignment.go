package model

// Assignment links a person to a project for a date range at a daily
// capacity. Open date ranges have nil start or end.
type Assignment struct {
	PersonID      ID      `json:"personId"`
	ProjectID     ID      `json:"projectId"`
	RoleID        *ID     `json:"roleId,omitempty"`
	StartDate     *string `json:"startDate,omitempty"`
	EndDate       *string `json:"endDate,omitempty"`
	MinutesPerDay int     `json:"minutesPerDay"`
}

// Actual is a recorded timesheet entry.
type Actual struct {
	PersonID           ID      `json:"personId"`
	ProjectID          ID      `json:"projectId"`
	RoleID             *ID     `json:"roleId,omitempty"`
	Date               *string `json:"date,omitempty"`
	BillableMinutes    int     `json:"billableMinutes"`
	NonbillableMinutes int     `json:"nonbillableMinutes"`
}
