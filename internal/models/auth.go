package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims are the token claims carried through the identity boundary.
// The scoping engine trusts these as the already-authenticated actor.
type JWTClaims struct {
	UserID       string  `json:"uid"`
	Role         Role    `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
	FullName     string  `json:"full_name"`
	jwt.RegisteredClaims
}

// Actor converts validated claims into the scoping identity.
func (c *JWTClaims) Actor() *Actor {
	if c == nil {
		return nil
	}
	return &Actor{ID: c.UserID, Role: c.Role, DepartmentID: c.DepartmentID, FullName: c.FullName}
}

// LoginRequest is the credential payload for token issuance.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token and the profile.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user"`
}

// RegisterRequest is the self-registration payload. Students pick their
// department at registration; faculty registrations default to Faculty.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	FullName     string `json:"full_name" validate:"required"`
	Role         Role   `json:"role" validate:"required,oneof=Faculty Student"`
	DepartmentID string `json:"department_id" validate:"required"`
}
