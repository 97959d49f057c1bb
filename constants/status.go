package constants

// Application status — tập giá trị đóng do backend quyết định,
// client chỉ gửi Pending khi tạo và hiển thị các giá trị còn lại.
const (
	ApplicationStatusPending  = "Pending"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// Session storage keys — hai khóa luôn được ghi/xóa cùng nhau.
const (
	StorageKeyToken  = "token"
	StorageKeyUserID = "userId"
)

// Auth link state
const (
	AuthLabelLogin  = "Login"
	AuthLabelLogout = "Logout"
)
