package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"hostelhub/dto"
	"hostelhub/errors"
)

var validate = validator.New()

// ValidateLoginInput validate thông tin đăng nhập
func ValidateLoginInput(input *dto.LoginInput) error {
	if input.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}
	if input.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", err)
	}
	return nil
}

// ValidateRegisterInput validate thông tin đăng ký
func ValidateRegisterInput(input *dto.RegisterInput) error {
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.Password == "" || input.ConfirmPassword == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Không được để trống trường nào", nil)
	}

	if input.Password != input.ConfirmPassword {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu nhập lại không khớp", nil)
	}

	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", err)
	}

	if !isValidPhone(input.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	return nil
}

// ValidateSearchFilters kiểm tra khoảng giá/occupancy hợp lệ. Giá trị 0
// nghĩa là tiêu chí tắt nên không bị coi là sai.
func ValidateSearchFilters(filters *dto.SearchFilters) error {
	if filters == nil {
		return nil
	}
	if filters.MinPrice < 0 || filters.MaxPrice < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá không được âm", nil)
	}
	if filters.MinPrice > 0 && filters.MaxPrice > 0 && filters.MinPrice > filters.MaxPrice {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá tối thiểu phải nhỏ hơn hoặc bằng giá tối đa", nil)
	}
	if filters.MaxOccupancy < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa không được âm", nil)
	}
	return nil
}

// ValidateHostelInput validate thông tin hostel ở mặt quản trị
func ValidateHostelInput(input *dto.HostelInput) error {
	if input.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên hostel không được để trống", nil)
	}
	if input.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả không được để trống", nil)
	}
	if input.OccupancyLimit <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải lớn hơn 0", nil)
	}
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Dữ liệu hostel không hợp lệ", err)
	}
	return nil
}

// ValidateNotificationInput validate thông báo gửi cho sinh viên
func ValidateNotificationInput(input *dto.NotificationInput) error {
	if input.UserID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID sinh viên không được để trống", nil)
	}
	if input.Message == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung thông báo không được để trống", nil)
	}
	return nil
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
