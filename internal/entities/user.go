package entities

import "time"

type User struct {
	ID          string
	Name        string
	Email       string
	Role        Role
	Status      UserStatusType
	JoinedAt    time.Time
	LastLogin   time.Time
	OrdersCount int
	Rating      *float64
}

func (u User) SearchableFields() []string {
	return []string{u.Name, u.Email}
}

func (u User) FilterValue(key string) (string, bool) {
	switch key {
	case FilterKeyRole:
		return u.Role.String(), true
	case FilterKeyStatus:
		return u.Status.String(), true
	default:
		return "", false
	}
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCarrier Role = "transporteur"
	RoleShipper Role = "affreteur"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrateur"
	case RoleCarrier:
		return "Transporteur"
	case RoleShipper:
		return "Affréteur"
	}
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCarrier, RoleShipper:
		return true
	}
	return false
}

type UserStatusType string

const (
	UserActive    UserStatusType = "active"
	UserInactive  UserStatusType = "inactive"
	UserSuspended UserStatusType = "suspended"
)

func (s UserStatusType) String() string {
	return string(s)
}

func (s UserStatusType) Label() string {
	switch s {
	case UserActive:
		return "Actif"
	case UserInactive:
		return "Inactif"
	case UserSuspended:
		return "Suspendu"
	}
	return string(s)
}
