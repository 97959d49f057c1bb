package dto

// ApplicationInput là body gửi lên POST /api/applications.
type ApplicationInput struct {
	UserID uint   `json:"user_id" validate:"required"`
	RoomID uint   `json:"room_id" validate:"required"`
	Status string `json:"status" validate:"required"`
}
