package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/models"
)

func dashboardService(t *testing.T, payload string) (*DashboardService, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.Header.Get("Authorization") == "" {
			http.Error(w, `{"error":"missing token"}`, http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)

	var session *SessionService
	api := NewAPIClient(srv.URL, func() string { return session.Token() }, testLogger())
	session = loggedInSession(t, api, 7)
	return NewDashboardService(session, api, testLogger()), &requests
}

func TestLoadDashboard(t *testing.T) {
	svc, _ := dashboardService(t, `{
		"profile": {"name": "Nguyễn Văn A", "email": "a@example.com"},
		"stats": {"total": 3, "pending": 1, "accepted": 1, "rejected": 1},
		"assignedRooms": [{"room": "A1", "hostel": "Lakeside Lodge"}],
		"notifications": [
			{"message": "Đơn của bạn đã được duyệt", "created_at": "2026-08-01T09:30:00Z"},
			{"message": "Chào mừng!", "created_at": "2026-07-20T08:00:00Z"}
		],
		"applications": [{"room": "A1", "status": "Accepted"}]
	}`)

	view, err := svc.LoadDashboard()
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}
	if view.StudentName != "Nguyễn Văn A" || view.StudentEmail != "a@example.com" {
		t.Errorf("profile = %q / %q", view.StudentName, view.StudentEmail)
	}
	if view.Stats.Total != 3 || view.Stats.Pending != 1 {
		t.Errorf("stats = %+v", view.Stats)
	}
	if len(view.AssignedRooms) != 1 || view.AssignedRooms[0].Hostel != "Lakeside Lodge" {
		t.Errorf("assignedRooms = %+v", view.AssignedRooms)
	}
	// Thứ tự thông báo giữ nguyên như server trả.
	if len(view.Notifications) != 2 || view.Notifications[0].Message != "Đơn của bạn đã được duyệt" {
		t.Errorf("notifications = %+v", view.Notifications)
	}
}

func TestLoadDashboardRequiresLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend không được gọi khi chưa đăng nhập")
	}))
	defer srv.Close()

	api := NewAPIClient(srv.URL, nil, testLogger())
	session := NewSessionService(tempSessionDB(t), api, testLogger())
	svc := NewDashboardService(session, api, testLogger())

	if _, err := svc.LoadDashboard(); !errors.HasCode(err, errors.ErrCodeNotAuthenticated) {
		t.Fatalf("lỗi = %v, muốn NOT_AUTHENTICATED", err)
	}
}

// Mỗi lần xem dashboard là một fetch mới, không cache.
func TestLoadDashboardNoCaching(t *testing.T) {
	svc, requests := dashboardService(t, `{}`)

	for i := 0; i < 3; i++ {
		if _, err := svc.LoadDashboard(); err != nil {
			t.Fatalf("lần %d: %v", i+1, err)
		}
	}
	if n := requests.Load(); n != 3 {
		t.Errorf("backend nhận %d request, muốn 3", n)
	}
}

// Từng phần thiếu được default độc lập: response rỗng hoàn toàn vẫn
// cho một view hiển thị được.
func TestBuildDashboardViewDefaults(t *testing.T) {
	view := BuildDashboardView(&dto.DashboardResponse{})

	if view.StudentName != "N/A" || view.StudentEmail != "N/A" {
		t.Errorf("profile thiếu: %q / %q, muốn N/A / N/A", view.StudentName, view.StudentEmail)
	}
	if view.Stats != (dto.DashboardStats{}) {
		t.Errorf("stats thiếu = %+v, muốn toàn 0", view.Stats)
	}
	if len(view.AssignedRooms) != 0 || len(view.Notifications) != 0 || len(view.Applications) != 0 {
		t.Error("danh sách thiếu phải ra rỗng")
	}
}

func TestBuildDashboardViewPartialProfile(t *testing.T) {
	view := BuildDashboardView(&dto.DashboardResponse{
		Profile: &models.Profile{Name: "Nguyễn Văn A"},
		Stats:   &dto.DashboardStats{Total: 2, Pending: 2},
	})

	if view.StudentName != "Nguyễn Văn A" {
		t.Errorf("StudentName = %q", view.StudentName)
	}
	// Email thiếu trong profile có mặt vẫn default riêng.
	if view.StudentEmail != "N/A" {
		t.Errorf("StudentEmail = %q, muốn N/A", view.StudentEmail)
	}
	if view.Stats.Total != 2 {
		t.Errorf("Stats.Total = %d, muốn 2", view.Stats.Total)
	}
}
