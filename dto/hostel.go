package dto

// HostelInput là body tạo/sửa hostel ở mặt quản trị.
type HostelInput struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Address        string `json:"address,omitempty"`
	OccupancyLimit int    `json:"occupancy_limit" validate:"required,gt=0"`
	PhotoURL       string `json:"photo_url,omitempty" validate:"omitempty,url"`
}

// NotificationInput là body gửi thông báo cho một sinh viên.
type NotificationInput struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}
