package model

import (
	"github.com/crewlens/crewlens/lib/utils"
)

// Leave is a time-off entry. A nil end date means open-ended leave.
type Leave struct {
	PersonID  ID      `json:"personId"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	LeaveType *string `json:"leaveType,omitempty"`
	Type      *string `json:"type,omitempty"`
}

// TypeName defaults through leaveType, then type, then the literal "Leave".
func (l *Leave) TypeName() string {
	return utils.Coalesce(utils.StrValue(l.LeaveType), utils.StrValue(l.Type), "Leave")
}
