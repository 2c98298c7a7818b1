package domain

type Role string

const (
	RoleStudent   Role = "STUDENT"
	RoleStaff     Role = "STAFF"
	RoleLibrarian Role = "LIBRARIAN"
	RoleAdmin     Role = "ADMIN"
	RoleExternal  Role = "EXTERNAL"
)

// CanModerate reports whether the role may approve or reject bookings.
func (r Role) CanModerate() bool {
	return r == RoleStaff || r == RoleLibrarian || r == RoleAdmin
}

type User struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
}

// Actor identifies who is performing a service call. Role is carried
// explicitly so services never inspect identity-provider fields.
type Actor struct {
	UserID int32
	Role   Role
}
