package model

// PortalUser is a patient portal account. Email is the identity key,
// compared case-insensitively. Password is the stored credential (bcrypt
// hash for registered accounts, plain text for the seeded demo accounts)
// and must never leave the service layer.
type PortalUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Sanitized returns a copy safe to hand to the transport layer.
func (u PortalUser) Sanitized() PortalUser {
	u.Password = ""
	return u
}

// PortalSession is the singleton "who is logged in" record. Its presence in
// the store is the only authentication signal; there is no token or expiry.
type PortalSession struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
