package entities

import "time"

// Session is created at login, read by navigation and destroyed at logout.
type Session struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionToken is handed to the client at login.
type SessionToken struct {
	Session Session
	Token   string
}

// DashboardCounter is one figure of a role's dashboard.
type DashboardCounter struct {
	Key   string
	Label string
	Value int
}

type DashboardSummary struct {
	Role     Role
	Counters []DashboardCounter
}
