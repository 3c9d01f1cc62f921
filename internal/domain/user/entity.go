package user

import "time"

// User is a login account. An account may exist before it is linked to an
// employee record.
type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	EmailVerified   bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// IsLinkedToGoogle reports whether a Google identity is attached.
func (u *User) IsLinkedToGoogle() bool {
	return u.OAuthProvider != nil && u.OAuthProviderID != nil
}
