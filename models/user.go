package models

// Role describes the access level assigned to a Qryptify account.
// The backend is the authority on role enforcement; the client only
// checks roles up front to avoid round trips that are certain to be
// rejected (for example, a non-admin calling signup).
type Role string

const (
	RoleGuest      Role = "guest"
	RoleResearcher Role = "researcher"
	RoleAuditor    Role = "auditor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the closed set of roles the
// backend issues.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleResearcher, RoleAuditor, RoleAdmin:
		return true
	}
	return false
}

// User is the account profile as owned by the backend. The client
// treats it as a read/patch resource: it is fetched from user-details,
// diffed locally, and only the changed fields are sent back to
// update-profile. Field names follow the backend serializer.
type User struct {
	// ID is the backend-side account identifier. Read-only.
	ID int64 `json:"id,omitempty"`

	// FirstName and LastName are display names, may be empty.
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Username is the unique account login.
	Username string `json:"username,omitempty"`

	// Email is the account e-mail address used for login and
	// password-reset mail.
	Email string `json:"email,omitempty"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// Role is the account access level. See [Role].
	Role Role `json:"role,omitempty"`

	// Limit is the analysis quota for guest accounts. The backend
	// requires it for guests and forbids it for every other role,
	// so a pointer distinguishes absent from zero.
	Limit *int `json:"limit,omitempty"`

	// DateJoined and LastLogin are backend-managed timestamps in the
	// backend's own string format. Read-only, passed through as-is.
	DateJoined string `json:"date_joined,omitempty"`
	LastLogin  string `json:"last_login,omitempty"`

	// IsActive reports whether the account is enabled.
	IsActive bool `json:"is_active,omitempty"`
}

// ProfileUpdate is the changed-fields-only payload for update-profile.
// Nil pointers are omitted from the JSON body, so the backend receives
// exactly the fields that differ from the fetched original.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Username  *string `json:"username,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Empty reports whether the update carries no changes at all.
func (p ProfileUpdate) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Username == nil && p.Phone == nil
}
