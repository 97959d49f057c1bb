package services

import (
	"hostelhub/builders"
	"hostelhub/errors"
	"hostelhub/models"
	"hostelhub/services/logger"
)

// ApplicationService gửi đơn đăng ký phòng cho danh tính hiện tại.
// Precondition đăng nhập được kiểm tra TRƯỚC mọi network call.
type ApplicationService struct {
	session *SessionService
	api     *APIClient
	logger  logger.Logger
}

func NewApplicationService(session *SessionService, api *APIClient, log logger.Logger) *ApplicationService {
	return &ApplicationService{
		session: session,
		api:     api,
		logger:  log,
	}
}

// Apply gửi một đơn {user_id, room_id, Pending} cho roomID. Chưa đăng
// nhập → NOT_AUTHENTICATED ngay, không request nào được gửi, caller
// chuyển người dùng sang màn đăng nhập. Server từ chối (trùng đơn,
// phòng đóng...) → REJECTED kèm message server, surface nguyên văn.
// Thành công không mutate cache cục bộ nào — dashboard fetch sau là
// nguồn sự thật; client cũng không dedupe đơn trùng, backend quyết.
func (s *ApplicationService) Apply(roomID uint) error {
	identity := s.session.CurrentIdentity()
	if identity == nil {
		return errors.NewAppError(errors.ErrCodeNotAuthenticated, "Vui lòng đăng nhập trước", errors.ErrNotAuthenticated)
	}

	input := builders.NewApplicationBuilder().
		WithUser(identity.UserID).
		WithRoom(roomID).
		Build()

	var created models.Application
	if err := s.api.PostJSON("/api/applications", input, &created); err != nil {
		return err
	}

	if created.Status != "" {
		if err := created.ValidateStatus(); err != nil {
			s.logger.Debug("server trả status lạ cho đơn %d: %v", created.ID, err)
		}
	}

	s.logger.Info("user %d đã nộp đơn cho phòng %d", identity.UserID, roomID)
	return nil
}
