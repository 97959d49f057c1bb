package commands

import (
	"hostelhub/dto"
	"hostelhub/services"
)

// Command định nghĩa interface cho các thao tác ghi của client
type Command interface {
	Execute() error
}

// ApplyCommand command để nộp đơn đăng ký một phòng
type ApplyCommand struct {
	apps   *services.ApplicationService
	roomID uint
}

func NewApplyCommand(apps *services.ApplicationService, roomID uint) *ApplyCommand {
	return &ApplyCommand{
		apps:   apps,
		roomID: roomID,
	}
}

func (c *ApplyCommand) Execute() error {
	return c.apps.Apply(c.roomID)
}

// CreateHostelCommand command để tạo hostel mới (mặt quản trị)
type CreateHostelCommand struct {
	admin *services.AdminService
	input dto.HostelInput
}

func NewCreateHostelCommand(admin *services.AdminService, input dto.HostelInput) *CreateHostelCommand {
	return &CreateHostelCommand{
		admin: admin,
		input: input,
	}
}

func (c *CreateHostelCommand) Execute() error {
	return c.admin.CreateHostel(c.input)
}

// UpdateHostelCommand command để cập nhật hostel
type UpdateHostelCommand struct {
	admin    *services.AdminService
	hostelID uint
	input    dto.HostelInput
}

func NewUpdateHostelCommand(admin *services.AdminService, hostelID uint, input dto.HostelInput) *UpdateHostelCommand {
	return &UpdateHostelCommand{
		admin:    admin,
		hostelID: hostelID,
		input:    input,
	}
}

func (c *UpdateHostelCommand) Execute() error {
	return c.admin.UpdateHostel(c.hostelID, c.input)
}

// DeleteHostelCommand command để xóa hostel
type DeleteHostelCommand struct {
	admin    *services.AdminService
	hostelID uint
}

func NewDeleteHostelCommand(admin *services.AdminService, hostelID uint) *DeleteHostelCommand {
	return &DeleteHostelCommand{
		admin:    admin,
		hostelID: hostelID,
	}
}

func (c *DeleteHostelCommand) Execute() error {
	return c.admin.DeleteHostel(c.hostelID)
}

// SendNotificationCommand command để gửi thông báo cho sinh viên
type SendNotificationCommand struct {
	admin *services.AdminService
	input dto.NotificationInput
}

func NewSendNotificationCommand(admin *services.AdminService, input dto.NotificationInput) *SendNotificationCommand {
	return &SendNotificationCommand{
		admin: admin,
		input: input,
	}
}

func (c *SendNotificationCommand) Execute() error {
	return c.admin.SendNotification(c.input)
}
