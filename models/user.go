package models

// User is the operator profile the upstream returns on login/verify.
type User struct {
	UserID string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}
