package model

import (
	"time"
)

const (
	BranchTableName  = "branches"
	BranchEntityName = "branch"

	BusinessHoursTableName  = "business_hours"
	BusinessHoursEntityName = "business_hours"

	StaffTableName  = "staff"
	StaffEntityName = "staff"

	StaffHoursTableName  = "staff_hours"
	StaffHoursEntityName = "staff_hours"

	BlackoutTableName  = "blackouts"
	BlackoutEntityName = "blackout"

	FieldID       = "id"
	FieldBranchID = "branch_id"
	FieldStaffID  = "staff_id"
	FieldWeekday  = "weekday"
	FieldActive   = "active"
	FieldStartsAt = "starts_at"
	FieldEndsAt   = "ends_at"
)

// Branch is a physical location. Its timezone names the IANA zone all of its
// business-hours and staff-hours wall-clock times are expressed in.
type Branch struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Timezone string `db:"timezone"`
}

// BusinessHours is the branch's open/close window for one weekday
// (0=Sunday .. 6=Saturday). At most one row exists per (branch, weekday).
// Clock columns hold local wall-clock strings, "HH:MM" or "HH:MM:SS".
type BusinessHours struct {
	ID        string `db:"id"`
	BranchID  string `db:"branch_id"`
	Weekday   int    `db:"weekday"`
	OpenTime  string `db:"open_time"`
	CloseTime string `db:"close_time"`
}

// Staff is a bookable staff member of a branch.
type Staff struct {
	ID       string `db:"id"`
	BranchID string `db:"branch_id"`
	Name     string `db:"name"`
	Active   bool   `db:"active"`
}

// StaffHours is one staff member's personal working window for one weekday,
// intersected with the branch's BusinessHours when computing availability.
type StaffHours struct {
	ID        string `db:"id"`
	StaffID   string `db:"staff_id"`
	Weekday   int    `db:"weekday"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

// Blackout marks a staff member unavailable for a time range regardless of
// appointments (time off, training, and so on).
type Blackout struct {
	ID       string    `db:"id"`
	StaffID  string    `db:"staff_id"`
	StartsAt time.Time `db:"starts_at"`
	EndsAt   time.Time `db:"ends_at"`
	Reason   string    `db:"reason"`
}
