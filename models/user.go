package models

// Profile là hồ sơ sinh viên trong payload dashboard.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
