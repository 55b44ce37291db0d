package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the outcome of a successful credential check.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"type"`
	Email    string `json:"email,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session is the signed-in identity kept in its own durable slot.
type Session struct {
	Type            Role   `json:"type"`
	Username        string `json:"username"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

func (s Session) IsAdmin() bool {
	return s.IsAuthenticated && s.Type == RoleAdmin
}

func (s Session) IsUser() bool {
	return s.IsAuthenticated && s.Type == RoleUser
}
