package models

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"` // display name shown on pages
	PasswordHash string `json:"-"`    // don’t expose hash
}
