package domain

import "time"

// DutySchedule is one (user, date, zone) cleaning assignment. No uniqueness
// is enforced across entries; the same user may hold several zones per day.
type DutySchedule struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Date      time.Time `json:"date"`
	Zone      string    `json:"zone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

var DutyStatuses = []string{"pending", "completed", "missed"}

const DefaultDutyStatus = "pending"
