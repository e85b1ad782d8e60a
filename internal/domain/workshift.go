package domain

import "time"

// WorkShift is a penalty-duty assignment measured in days. CompletedDays only
// grows. Archiving copies the row into archived_work_shifts and flags the
// original inside one transaction, so a reader sees the shift in exactly one
// of the two stores.
type WorkShift struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	UserName        string     `json:"userName"`
	Days            int        `json:"days"`
	CompletedDays   int        `json:"completedDays"`
	AssignedBy      string     `json:"assignedBy"`
	AssignedByName  string     `json:"assignedByName"`
	Reason          string     `json:"reason"`
	IsArchived      bool       `json:"isArchived"`
	AssignedAt      time.Time  `json:"assignedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	CompletedBy     *string    `json:"completedBy"`
	CompletedByName *string    `json:"completedByName"`
}

// ArchivedWorkShift is the historical copy written by the archive action.
type ArchivedWorkShift struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	Days           int       `json:"days"`
	CompletedDays  int       `json:"completedDays"`
	AssignedBy     string    `json:"assignedBy"`
	AssignedByName string    `json:"assignedByName"`
	Reason         string    `json:"reason"`
	AssignedAt     time.Time `json:"assignedAt"`
	ArchivedAt     time.Time `json:"archivedAt"`
}
