package validator

import (
	"testing"

	"hostelhub/dto"
	"hostelhub/errors"
)

func TestValidateLoginInput(t *testing.T) {
	if err := ValidateLoginInput(&dto.LoginInput{Email: "sv@example.com", Password: "secret"}); err != nil {
		t.Errorf("input hợp lệ bị chê: %v", err)
	}
	if err := ValidateLoginInput(&dto.LoginInput{Password: "secret"}); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu email: %v", err)
	}
	if err := ValidateLoginInput(&dto.LoginInput{Email: "sai-định-dạng", Password: "x"}); !errors.HasCode(err, errors.ErrCodeInvalidEmail) {
		t.Errorf("email sai định dạng: %v", err)
	}
}

func TestValidateRegisterInput(t *testing.T) {
	valid := dto.RegisterInput{
		Name:            "Nguyễn Văn A",
		Email:           "a@example.com",
		Phone:           "0912345678",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if err := ValidateRegisterInput(&valid); err != nil {
		t.Errorf("input hợp lệ bị chê: %v", err)
	}

	mismatch := valid
	mismatch.ConfirmPassword = "khác"
	if err := ValidateRegisterInput(&mismatch); !errors.HasCode(err, errors.ErrCodeInvalidPassword) {
		t.Errorf("mật khẩu lệch: %v", err)
	}

	badPhone := valid
	badPhone.Phone = "12ab"
	if err := ValidateRegisterInput(&badPhone); !errors.HasCode(err, errors.ErrCodeInvalidPhone) {
		t.Errorf("số điện thoại sai: %v", err)
	}

	shortPass := valid
	shortPass.Password = "abc"
	shortPass.ConfirmPassword = "abc"
	if err := ValidateRegisterInput(&shortPass); !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("mật khẩu ngắn: %v", err)
	}
}

func TestValidateSearchFilters(t *testing.T) {
	// 0 nghĩa là tiêu chí tắt nên không phải lỗi.
	if err := ValidateSearchFilters(&dto.SearchFilters{}); err != nil {
		t.Errorf("bộ lọc rỗng bị chê: %v", err)
	}
	if err := ValidateSearchFilters(nil); err != nil {
		t.Errorf("nil bị chê: %v", err)
	}
	if err := ValidateSearchFilters(&dto.SearchFilters{MinPrice: -1}); err == nil {
		t.Error("giá âm phải bị chê")
	}
	if err := ValidateSearchFilters(&dto.SearchFilters{MinPrice: 500, MaxPrice: 100}); err == nil {
		t.Error("min > max phải bị chê")
	}
	if err := ValidateSearchFilters(&dto.SearchFilters{MinPrice: 100, MaxPrice: 100}); err != nil {
		t.Errorf("min = max hợp lệ nhưng bị chê: %v", err)
	}
}

func TestValidateHostelInput(t *testing.T) {
	valid := dto.HostelInput{
		Name:           "Lakeside Lodge",
		Description:    "Gần hồ",
		OccupancyLimit: 50,
	}
	if err := ValidateHostelInput(&valid); err != nil {
		t.Errorf("hostel hợp lệ bị chê: %v", err)
	}

	noName := valid
	noName.Name = ""
	if err := ValidateHostelInput(&noName); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu tên: %v", err)
	}

	zeroCap := valid
	zeroCap.OccupancyLimit = 0
	if err := ValidateHostelInput(&zeroCap); !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("sức chứa 0: %v", err)
	}

	badURL := valid
	badURL.PhotoURL = "không phải url"
	if err := ValidateHostelInput(&badURL); !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("url ảnh sai: %v", err)
	}
}

func TestValidateNotificationInput(t *testing.T) {
	if err := ValidateNotificationInput(&dto.NotificationInput{UserID: 7, Message: "xin chào"}); err != nil {
		t.Errorf("thông báo hợp lệ bị chê: %v", err)
	}
	if err := ValidateNotificationInput(&dto.NotificationInput{Message: "xin chào"}); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu user id: %v", err)
	}
	if err := ValidateNotificationInput(&dto.NotificationInput{UserID: 7}); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu nội dung: %v", err)
	}
}
