package services

import (
	"strconv"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/services/logger"
	"hostelhub/validator"
)

// SessionService là nguồn sự thật duy nhất cho trạng thái đăng nhập,
// suy ra thuần túy từ token đang lưu. Chỉ Login/Logout được ghi trạng
// thái phiên; mọi thành phần khác chỉ đọc.
type SessionService struct {
	db     *config.SessionDB
	api    *APIClient
	logger logger.Logger
}

func NewSessionService(db *config.SessionDB, api *APIClient, log logger.Logger) *SessionService {
	return &SessionService{
		db:     db,
		api:    api,
		logger: log,
	}
}

// Login gửi credential lên backend, decode token trả về và lưu phiên.
// Token và userId được ghi trong một transaction: thất bại ở bất kỳ
// bước nào thì không có gì được ghi.
func (s *SessionService) Login(input dto.LoginInput) (*dto.Identity, error) {
	if err := validator.ValidateLoginInput(&input); err != nil {
		return nil, err
	}

	var resp dto.LoginResponse
	if err := s.api.PostJSON("/api/auth/login", input, &resp); err != nil {
		// Server trả non-2xx nghĩa là credential bị từ chối; lỗi mạng
		// giữ nguyên UNAVAILABLE.
		if appErr := errors.GetAppError(err); appErr != nil && appErr.Code == errors.ErrCodeRejected {
			return nil, errors.NewAppError(errors.ErrCodeInvalidCredential, appErr.Message, appErr.Err)
		}
		return nil, err
	}

	if resp.Token == "" {
		return nil, errors.NewAppError(errors.ErrCodeServerRejected, "Phản hồi đăng nhập thiếu token", errors.ErrTokenMissing)
	}

	identity, err := DecodeIdentity(resp.Token)
	if err != nil {
		return nil, err
	}

	if err := s.db.SetAll(map[string]string{
		constants.StorageKeyToken:  resp.Token,
		constants.StorageKeyUserID: strconv.FormatUint(uint64(identity.UserID), 10),
	}); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStorage, "Không lưu được phiên đăng nhập", err)
	}

	s.logger.Info("đăng nhập thành công, user %d", identity.UserID)
	return identity, nil
}

// Register tạo tài khoản mới; không tự đăng nhập sau khi đăng ký.
func (s *SessionService) Register(input dto.RegisterInput) error {
	if err := validator.ValidateRegisterInput(&input); err != nil {
		return err
	}
	return s.api.PostJSON("/api/users", input, nil)
}

// Logout xóa toàn bộ trạng thái phiên vô điều kiện, không có failure
// mode — lỗi storage chỉ ghi log.
func (s *SessionService) Logout() {
	if err := s.db.Clear(); err != nil {
		s.logger.Error("lỗi xóa phiên: %v", err)
	}
}

// Token trả về bearer token đang lưu, rỗng nếu chưa đăng nhập.
func (s *SessionService) Token() string {
	token, err := s.db.Get(constants.StorageKeyToken)
	if err != nil {
		s.logger.Error("lỗi đọc token: %v", err)
		return ""
	}
	return token
}

// CurrentIdentity đọc thuần trạng thái phiên. Token hỏng suy biến thành
// "chưa đăng nhập" chứ không phải lỗi. Không kiểm tra hạn token — có
// token là tin đã đăng nhập, request sau sẽ tự thất bại nếu backend
// không đồng ý.
func (s *SessionService) CurrentIdentity() *dto.Identity {
	token := s.Token()
	if token == "" {
		return nil
	}
	identity, err := DecodeIdentity(token)
	if err != nil {
		s.logger.Debug("token trong storage không decode được: %v", err)
		return nil
	}
	return identity
}

// AuthLabel trả về nhãn cho auth link: Login khi chưa có phiên, Logout
// khi đang đăng nhập.
func (s *SessionService) AuthLabel() string {
	if s.CurrentIdentity() != nil {
		return constants.AuthLabelLogout
	}
	return constants.AuthLabelLogin
}
