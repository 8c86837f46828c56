package domain

import "time"

// User represents a user entity in the system.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	ApprovalGroup string    `json:"approval_group,omitempty"`
	Active        bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleAdmin, RoleApprover, RoleEditor}

const (
	RoleAdmin    = "admin"
	RoleApprover = "approver"
	RoleEditor   = "editor"
)

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanDecide reports whether the user has authority to decide revisions
// targeting the given article. Admins decide anything; approvers decide
// within their approval group. The self-approval check is separate.
func (u *User) CanDecide(article *Article) bool {
	if !u.Active {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RoleApprover && u.ApprovalGroup == article.ApprovalGroup
}
