package models

// LoginRequest is the credentials payload for the login endpoint.
// RememberMe extends the lifetime of the cookie-based session the
// backend issues alongside the bearer token.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me,omitempty"`
}

// SignupRequest creates a new account. The endpoint is privileged: the
// backend only accepts it from an admin session, and the client checks
// the caller's role first to save the round trip.
type SignupRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Limit     *int   `json:"limit,omitempty"`
}

// ResetPasswordRequest changes the password of the signed-in account.
type ResetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ForgotPasswordRequest resets a forgotten password by e-mail identity.
type ForgotPasswordRequest struct {
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// MailRequest is the contact-form payload for issue-mail.
type MailRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}
