package builders

import (
	"hostelhub/constants"
	"hostelhub/dto"
)

// ApplicationBuilder giúp tạo đơn đăng ký phòng theo từng bước
type ApplicationBuilder struct {
	input *dto.ApplicationInput
}

// NewApplicationBuilder tạo instance mới của ApplicationBuilder với
// status mặc định là Pending — client không bao giờ tạo status khác.
func NewApplicationBuilder() *ApplicationBuilder {
	return &ApplicationBuilder{
		input: &dto.ApplicationInput{
			Status: constants.ApplicationStatusPending,
		},
	}
}

// WithUser thêm thông tin user
func (b *ApplicationBuilder) WithUser(userID uint) *ApplicationBuilder {
	b.input.UserID = userID
	return b
}

// WithRoom thêm thông tin phòng
func (b *ApplicationBuilder) WithRoom(roomID uint) *ApplicationBuilder {
	b.input.RoomID = roomID
	return b
}

// Build tạo payload hoàn chỉnh
func (b *ApplicationBuilder) Build() *dto.ApplicationInput {
	return b.input
}
