package models

// Todo is a single task on a user's list.
type Todo struct {
	ID       int64  `json:"id"`
	UserID   int    `json:"user_id"`
	Task     string `json:"task"`
	Complete bool   `json:"complete"`
}
