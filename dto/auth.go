package dto

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"-" validate:"required"`
}

// LoginResponse là body trả về của POST /api/auth/login. Token là cấu
// trúc ký 3 đoạn; client chỉ decode đoạn giữa, không verify chữ ký.
type LoginResponse struct {
	Token string `json:"token"`
	Error string `json:"error,omitempty"`
}

// Identity là danh tính suy ra từ payload của token, chỉ tồn tại khi
// đang giữ token.
type Identity struct {
	UserID uint `json:"id"`
}
