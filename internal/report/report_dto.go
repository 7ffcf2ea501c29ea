package report

import "time"

// DashboardStats is the security desk overview for one event. Values
// are cached briefly; the dashboard polls faster than the data moves.
type DashboardStats struct {
	EventID           string        `json:"event_id"`
	TotalRegistered   int64         `json:"total_registered"`
	TotalApproved     int64         `json:"total_approved"`
	TotalCheckedIn    int64         `json:"total_checked_in"`
	DuplicateAttempts int64         `json:"duplicate_attempts"`
	CheckInsLastHour  int64         `json:"check_ins_last_hour"`
	OpenIncidents     int64         `json:"open_incidents"`
	CriticalIncidents int64         `json:"critical_incidents"`
	UsersByRole       []RoleCount   `json:"users_by_role"`
	AttendeesByStatus []StatusCount `json:"attendees_by_status"`
	CheckInsPerDay    []DayCount    `json:"check_ins_per_day"`
	GeneratedAt       time.Time     `json:"generated_at"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// MethodBreakdown counts check-ins per verification method.
type MethodBreakdown struct {
	Method string `json:"method"`
	Count  int64  `json:"count"`
}

type AttendanceReport struct {
	EventID   string            `json:"event_id"`
	Total     int64             `json:"total"`
	ByMethod  []MethodBreakdown `json:"by_method"`
	FirstScan *time.Time        `json:"first_scan,omitempty"`
	LastScan  *time.Time        `json:"last_scan,omitempty"`
}
