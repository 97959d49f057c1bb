package services

import (
	"fmt"

	"hostelhub/dto"
	"hostelhub/models"
	"hostelhub/services/logger"
	"hostelhub/validator"
)

// AdminService là mặt quản trị: CRUD hostel và gửi thông báo, đánh
// thẳng vào cùng backend. Bearer token được APIClient tự gắn khi có
// phiên; các form chỉ là cặp request/response đơn giản.
type AdminService struct {
	api    *APIClient
	logger logger.Logger
}

func NewAdminService(api *APIClient, log logger.Logger) *AdminService {
	return &AdminService{
		api:    api,
		logger: log,
	}
}

// ListHostels lấy toàn bộ hostel cho bảng quản trị.
func (s *AdminService) ListHostels() ([]models.Hostel, error) {
	var hostels []models.Hostel
	if err := s.api.GetJSON("/api/hostels", &hostels); err != nil {
		return nil, err
	}
	return hostels, nil
}

// GetHostel lấy một hostel để đổ vào form sửa.
func (s *AdminService) GetHostel(id uint) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := s.api.GetJSON(fmt.Sprintf("/api/hostels/%d", id), &hostel); err != nil {
		return nil, err
	}
	return &hostel, nil
}

// CreateHostel tạo hostel mới.
func (s *AdminService) CreateHostel(input dto.HostelInput) error {
	if err := validator.ValidateHostelInput(&input); err != nil {
		return err
	}
	if err := s.api.PostJSON("/api/hostels", input, nil); err != nil {
		return err
	}
	s.logger.Info("đã tạo hostel %q", input.Name)
	return nil
}

// UpdateHostel sửa hostel theo id.
func (s *AdminService) UpdateHostel(id uint, input dto.HostelInput) error {
	if err := validator.ValidateHostelInput(&input); err != nil {
		return err
	}
	if err := s.api.PutJSON(fmt.Sprintf("/api/hostels/%d", id), input, nil); err != nil {
		return err
	}
	s.logger.Info("đã cập nhật hostel %d", id)
	return nil
}

// DeleteHostel xóa hostel theo id.
func (s *AdminService) DeleteHostel(id uint) error {
	if err := s.api.Delete(fmt.Sprintf("/api/hostels/%d", id)); err != nil {
		return err
	}
	s.logger.Info("đã xóa hostel %d", id)
	return nil
}

// SendNotification gửi thông báo cho một sinh viên.
func (s *AdminService) SendNotification(input dto.NotificationInput) error {
	if err := validator.ValidateNotificationInput(&input); err != nil {
		return err
	}
	return s.api.PostJSON("/api/notifications", input, nil)
}
