package dto

import "hostelhub/models"

// DashboardStats là số đơn theo trạng thái.
type DashboardStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// AssignedRoom là một phòng đã được xếp, server trả tên sẵn.
type AssignedRoom struct {
	Room   string `json:"room"`
	Hostel string `json:"hostel"`
}

// ApplicationSummary là một dòng trong danh sách đơn của sinh viên.
type ApplicationSummary struct {
	Room   string `json:"room"`
	Status string `json:"status"`
}

// DashboardResponse là payload gộp của GET /api/dashboard. Mọi trường
// mức đỉnh đều có thể vắng; từng phần được default độc lập khi dựng view.
type DashboardResponse struct {
	Profile       *models.Profile       `json:"profile,omitempty"`
	Stats         *DashboardStats       `json:"stats,omitempty"`
	AssignedRooms []AssignedRoom        `json:"assignedRooms,omitempty"`
	Notifications []models.Notification `json:"notifications,omitempty"`
	Applications  []ApplicationSummary  `json:"applications,omitempty"`
}

// DashboardView là bản hiển thị đã default đầy đủ: một response thiếu
// phần nào thì view chỉ thưa đi chứ không bao giờ vỡ.
type DashboardView struct {
	StudentName  string
	StudentEmail string
	Stats        DashboardStats
	// Giữ nguyên thứ tự server trả, không sort lại phía client.
	AssignedRooms []AssignedRoom
	Notifications []models.Notification
	Applications  []ApplicationSummary
}
