package services

import (
	"encoding/json"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"hostelhub/dto"
	"hostelhub/errors"
)

// DecodeIdentity suy ra danh tính từ một token 3 đoạn mà KHÔNG verify
// chữ ký hay hạn — việc đó thuộc backend; client chỉ cần user id trong
// payload. Token hỏng trả lỗi, không bao giờ panic: caller coi đó là
// "chưa đăng nhập" chứ không phải lỗi chết trang.
func DecodeIdentity(tokenString string) (*dto.Identity, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	// Giải mã phần payload của token
	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	userID, ok := claimsMap["id"].(float64)
	if !ok || userID <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	return &dto.Identity{UserID: uint(userID)}, nil
}
