package models

import (
	"fmt"

	"hostelhub/constants"
)

// Application là một đơn đăng ký phòng. Client luôn tạo với status
// Pending; các chuyển trạng thái sau đó do server quyết, client chỉ đọc.
type Application struct {
	ID     uint   `json:"id,omitempty"`
	UserID uint   `json:"user_id"`
	RoomID uint   `json:"room_id"`
	Status string `json:"status"`
}

func (a *Application) ValidateStatus() error {
	switch a.Status {
	case constants.ApplicationStatusPending,
		constants.ApplicationStatusAccepted,
		constants.ApplicationStatusRejected:
		return nil
	}
	return fmt.Errorf("invalid status: %q", a.Status)
}
