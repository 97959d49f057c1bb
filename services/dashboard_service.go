package services

import (
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/services/logger"
)

// DashboardService biến một fetch gộp thành các nhóm hiển thị của
// dashboard sinh viên. Độc lập với catalog/filter, chỉ phụ thuộc phiên.
type DashboardService struct {
	session *SessionService
	api     *APIClient
	logger  logger.Logger
}

func NewDashboardService(session *SessionService, api *APIClient, log logger.Logger) *DashboardService {
	return &DashboardService{
		session: session,
		api:     api,
		logger:  log,
	}
}

// LoadDashboard fetch payload gộp kèm bearer token và dựng view đã
// default. Chưa đăng nhập → NOT_AUTHENTICATED và caller chuyển sang
// màn đăng nhập. Dashboard được fetch lại toàn bộ mỗi lần xem, không
// có cache riêng.
func (s *DashboardService) LoadDashboard() (*dto.DashboardView, error) {
	if s.session.CurrentIdentity() == nil {
		return nil, errors.NewAppError(errors.ErrCodeNotAuthenticated, "Vui lòng đăng nhập trước", errors.ErrNotAuthenticated)
	}

	var resp dto.DashboardResponse
	if err := s.api.GetJSON("/api/dashboard", &resp); err != nil {
		return nil, err
	}

	return BuildDashboardView(&resp), nil
}

// BuildDashboardView default từng phần của response một cách độc lập:
// profile thiếu → "N/A", stats thiếu → 0, danh sách thiếu → rỗng.
// Response thưa chỉ cho view thưa, không bao giờ cho view vỡ. Thứ tự
// các danh sách giữ nguyên như server trả.
func BuildDashboardView(resp *dto.DashboardResponse) *dto.DashboardView {
	view := &dto.DashboardView{
		StudentName:  "N/A",
		StudentEmail: "N/A",
	}

	if resp.Profile != nil {
		if resp.Profile.Name != "" {
			view.StudentName = resp.Profile.Name
		}
		if resp.Profile.Email != "" {
			view.StudentEmail = resp.Profile.Email
		}
	}

	if resp.Stats != nil {
		view.Stats = *resp.Stats
	}

	view.AssignedRooms = resp.AssignedRooms
	view.Notifications = resp.Notifications
	view.Applications = resp.Applications
	return view
}
