package services

import (
	"testing"

	"hostelhub/errors"
)

func TestDecodeIdentity(t *testing.T) {
	token := makeToken(t, map[string]interface{}{"id": float64(42), "email": "sv@example.com"})

	identity, err := DecodeIdentity(token)
	if err != nil {
		t.Fatalf("decode token hợp lệ: %v", err)
	}
	if identity.UserID != 42 {
		t.Errorf("UserID = %d, muốn 42", identity.UserID)
	}
}

func TestDecodeIdentityMalformed(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"rỗng", ""},
		{"thiếu đoạn", "chỉ-một-đoạn"},
		{"hai đoạn", "aaa.bbb"},
		{"base64 hỏng", "aaa.!!!không-phải-base64!!!.ccc"},
		{"payload không phải JSON", "aaa.bm90LWpzb24.ccc"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			identity, err := DecodeIdentity(tc.token)
			if err == nil {
				t.Fatalf("token %q decode được, muốn lỗi", tc.token)
			}
			if identity != nil {
				t.Errorf("identity = %+v, muốn nil", identity)
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidToken) {
				t.Errorf("mã lỗi = %v, muốn INVALID_TOKEN", err)
			}
		})
	}
}

func TestDecodeIdentityMissingID(t *testing.T) {
	for _, claims := range []map[string]interface{}{
		{"email": "sv@example.com"},
		{"id": float64(0)},
		{"id": float64(-3)},
		{"id": "bảy"},
	} {
		token := makeToken(t, claims)
		if _, err := DecodeIdentity(token); !errors.HasCode(err, errors.ErrCodeInvalidToken) {
			t.Errorf("claims %v: lỗi = %v, muốn INVALID_TOKEN", claims, err)
		}
	}
}
