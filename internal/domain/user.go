package domain

// User is the dormitory resident account (users table).
// PasswordDigest is never serialized; responses carry only public fields.
type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	PasswordDigest string   `json:"-"`
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Room           *string  `json:"room"`
	Group          *string  `json:"group"`
	Positions      []string `json:"positions"`
}

var UserRoles = []string{"admin", "manager", "moderator", "member"}

const DefaultUserRole = "member"
