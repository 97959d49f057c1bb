package models

type Notification struct {
	ID        uint   `json:"id,omitempty"`
	UserID    uint   `json:"user_id,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
