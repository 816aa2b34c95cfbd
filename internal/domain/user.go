package domain

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// User is a fixed demo persona. The set of users is static configuration;
// nothing creates or destroys users at runtime.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	AvatarURL string `json:"avatar"`
}

type SwitchUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// CanEdit reports whether a user with the given role may edit a document
// whose access level is the minimum role required to edit it. The predicate
// is pure and recomputed on every call; it is never stored on the document.
func CanEdit(role Role, accessLevel Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleEditor:
		return accessLevel != RoleAdmin
	default:
		return false
	}
}
