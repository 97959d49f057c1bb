package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"hostelhub/commands"
	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/dto"
	"hostelhub/errors"
	"hostelhub/services"
	"hostelhub/services/logger"
	"hostelhub/utils"
	"hostelhub/validator"
)

// app gom các service của client, khởi tạo một lần cho cả phiên chạy.
type app struct {
	session   *services.SessionService
	catalog   *services.CatalogService
	apps      *services.ApplicationService
	dashboard *services.DashboardService
	admin     *services.AdminService
}

// readPassword đọc mật khẩu có che ký tự
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func readLine(sc *bufio.Scanner, prompt string) (string, bool) {
	fmt.Print(prompt)
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func main() {
	config.LoadEnv()

	log := logger.NewFileLogger(config.GetLogDir(), logger.InfoLevel)

	sessionDB, err := config.OpenSessionDB(config.GetSessionDBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lỗi mở session db: %v\n", err)
		os.Exit(1)
	}
	defer sessionDB.Close()

	apiClient := services.NewAPIClient(config.GetBackendURL(), func() string {
		token, _ := sessionDB.Get(constants.StorageKeyToken)
		return token
	}, log)

	session := services.NewSessionService(sessionDB, apiClient, log)
	a := &app{
		session:   session,
		catalog:   services.NewCatalogService(apiClient, log),
		apps:      services.NewApplicationService(session, apiClient, log),
		dashboard: services.NewDashboardService(session, apiClient, log),
		admin:     services.NewAdminService(apiClient, log),
	}

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Hostel Hub — client đặt phòng ký túc xá")
	fmt.Println("Các lệnh:")
	fmt.Println("  Catalog: browse, hostels, rooms")
	fmt.Println("  Sinh viên: login, register, logout, apply, dashboard, applications")
	fmt.Println("  Quản trị: admin hostels, add hostel, edit hostel, delete hostel, notify")
	fmt.Println("  Hệ thống: exit")

	for {
		fmt.Printf("\n[%s] > ", a.session.AuthLabel())
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "browse":
			handleBrowse(scanner, a)
		case "hostels":
			handleHostels(a)
		case "rooms":
			handleRooms(a)
		case "login":
			handleLogin(scanner, a)
		case "register":
			handleRegister(scanner, a)
		case "logout":
			a.session.Logout()
			fmt.Println("Đã đăng xuất.")
		case "apply":
			handleApply(scanner, a)
		case "dashboard":
			handleDashboard(a)
		case "applications":
			handleApplications(a)
		case "admin hostels":
			handleAdminHostels(a)
		case "add hostel":
			handleSaveHostel(scanner, a, 0)
		case "edit hostel":
			handleEditHostel(scanner, a)
		case "delete hostel":
			handleDeleteHostel(scanner, a)
		case "notify":
			handleNotify(scanner, a)
		case "exit":
			fmt.Println("Tạm biệt!")
			return
		case "":
		default:
			fmt.Println("Lệnh không hợp lệ. Gõ một trong các lệnh đã liệt kê ở trên.")
		}
	}
}

// ensureCatalog nạp catalog nếu cache còn trống; lỗi nạp không đụng
// tới cache cũ nên gọi lại lần sau vẫn dùng được.
func ensureCatalog(a *app) bool {
	if a.catalog.Loaded() {
		return true
	}
	if _, _, err := a.catalog.LoadCatalog(); err != nil {
		fmt.Printf("Không tải được catalog: %v\n", err)
		return false
	}
	return true
}

func handleBrowse(sc *bufio.Scanner, a *app) {
	if !ensureCatalog(a) {
		return
	}

	filters := promptFilters(sc)
	if err := validator.ValidateSearchFilters(filters); err != nil {
		fmt.Printf("Bộ lọc không hợp lệ: %v\n", err)
		return
	}
	if filters.IsEmpty() {
		fmt.Println("Không có tiêu chí nào — hiển thị toàn bộ catalog.")
	}

	listings := services.FilterHostels(a.catalog.Hostels(), a.catalog.Rooms(), filters)
	if len(listings) == 0 {
		fmt.Println("Không có hostel nào khớp bộ lọc.")
		if filters.Location != "" {
			if hint := services.SuggestLocation(filters.Location, a.catalog.Hostels()); hint != "" {
				fmt.Printf("Có phải bạn muốn tìm khu vực %q?\n", hint)
			}
		}
		return
	}

	for _, listing := range listings {
		fmt.Printf("\n=== %s ===\n", listing.Hostel.Name)
		fmt.Println(listing.Hostel.Description)
		if listing.Hostel.Address != "" {
			fmt.Printf("Địa chỉ: %s\n", listing.Hostel.Address)
		}
		if len(listing.Rooms) == 0 {
			fmt.Println("  Không có phòng phù hợp.")
			continue
		}
		for _, room := range listing.Rooms {
			fmt.Printf("  [%d] %s — %s — giá %s, ở tối đa %d\n",
				room.ID,
				room.Name,
				utils.TruncateString(room.Description, 40),
				utils.FormatPrice(room.Price),
				room.OccupancyLimit)
		}
	}
	fmt.Println("\nDùng lệnh 'apply' với ID phòng để nộp đơn.")
}

// promptFilters đọc các tiêu chí lọc; bỏ trống = không lọc. Số nhập
// sai cũng coi như bỏ trống, giống input form của web.
func promptFilters(sc *bufio.Scanner) *dto.SearchFilters {
	filters := &dto.SearchFilters{}

	if v, ok := readLine(sc, "Khu vực (bỏ trống nếu không lọc): "); ok {
		filters.Location = v
	}
	if v, ok := readLine(sc, "Tiện ích: "); ok {
		filters.Amenities = v
	}
	if v, ok := readLine(sc, "Giá tối thiểu: "); ok {
		filters.MinPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := readLine(sc, "Giá tối đa: "); ok {
		filters.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := readLine(sc, "Sức chứa tối đa: "); ok {
		filters.MaxOccupancy, _ = strconv.Atoi(v)
	}
	return filters
}

func handleHostels(a *app) {
	hostels, err := a.admin.ListHostels()
	if err != nil {
		fmt.Printf("Lỗi tải danh sách hostel: %v\n", err)
		return
	}
	if len(hostels) == 0 {
		fmt.Println("Chưa có hostel nào.")
		return
	}

	fmt.Printf("%-5s %-25s %-25s %-35s %s\n", "ID", "Tên", "Địa chỉ", "Mô tả", "Sức chứa")
	fmt.Println(strings.Repeat("-", 100))
	for _, h := range hostels {
		addr := h.Address
		if addr == "" {
			addr = "—"
		}
		fmt.Printf("%-5d %-25s %-25s %-35s %d\n",
			h.ID,
			utils.TruncateString(h.Name, 25),
			utils.TruncateString(addr, 25),
			utils.TruncateString(h.Description, 35),
			h.OccupancyLimit)
	}
}

func handleRooms(a *app) {
	if !ensureCatalog(a) {
		return
	}

	rooms := a.catalog.Rooms()
	if len(rooms) == 0 {
		fmt.Println("Chưa có phòng nào.")
		return
	}

	// Map hostel_id → tên để hiển thị; phòng mồ côi hiện "Unknown".
	hostelNames := make(map[uint]string)
	for _, h := range a.catalog.Hostels() {
		hostelNames[h.ID] = h.Name
	}

	fmt.Printf("%-5s %-25s %-12s %-10s %s\n", "ID", "Tên", "Giá", "Sức chứa", "Hostel")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range rooms {
		hostelName, ok := hostelNames[r.HostelID]
		if !ok {
			hostelName = "Unknown"
		}
		fmt.Printf("%-5d %-25s %-12s %-10d %s\n",
			r.ID,
			utils.TruncateString(r.Name, 25),
			utils.FormatPrice(r.Price),
			r.OccupancyLimit,
			hostelName)
	}
}

func handleLogin(sc *bufio.Scanner, a *app) {
	email, ok := readLine(sc, "Email: ")
	if !ok {
		return
	}
	password, err := readPassword("Mật khẩu: ")
	if err != nil {
		fmt.Printf("Lỗi đọc mật khẩu: %v\n", err)
		return
	}

	identity, err := a.session.Login(dto.LoginInput{Email: email, Password: password})
	if err != nil {
		fmt.Printf("Đăng nhập thất bại: %v\n", err)
		return
	}
	fmt.Printf("Đăng nhập thành công (user %d).\n", identity.UserID)
}

func handleRegister(sc *bufio.Scanner, a *app) {
	name, ok := readLine(sc, "Họ tên: ")
	if !ok {
		return
	}
	email, ok := readLine(sc, "Email: ")
	if !ok {
		return
	}
	phone, ok := readLine(sc, "Số điện thoại: ")
	if !ok {
		return
	}
	password, err := readPassword("Mật khẩu: ")
	if err != nil {
		fmt.Printf("Lỗi đọc mật khẩu: %v\n", err)
		return
	}
	confirm, err := readPassword("Nhập lại mật khẩu: ")
	if err != nil {
		fmt.Printf("Lỗi đọc mật khẩu: %v\n", err)
		return
	}

	input := dto.RegisterInput{
		Name:            name,
		Email:           email,
		Phone:           phone,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if err := a.session.Register(input); err != nil {
		fmt.Printf("Đăng ký thất bại: %v\n", err)
		return
	}
	fmt.Println("Đăng ký thành công! Hãy đăng nhập.")
}

func handleApply(sc *bufio.Scanner, a *app) {
	roomIDStr, ok := readLine(sc, "ID phòng: ")
	if !ok {
		return
	}
	roomID, err := strconv.ParseUint(roomIDStr, 10, 32)
	if err != nil {
		fmt.Printf("ID phòng không hợp lệ: %s\n", roomIDStr)
		return
	}

	cmd := commands.NewApplyCommand(a.apps, uint(roomID))
	if err := cmd.Execute(); err != nil {
		if errors.HasCode(err, errors.ErrCodeNotAuthenticated) {
			fmt.Println("Vui lòng đăng nhập trước (lệnh 'login').")
			return
		}
		fmt.Printf("Nộp đơn thất bại: %v\n", err)
		return
	}
	fmt.Println("Đã nộp đơn!")
}

func handleDashboard(a *app) {
	view, err := a.dashboard.LoadDashboard()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotAuthenticated) {
			fmt.Println("Vui lòng đăng nhập trước (lệnh 'login').")
			return
		}
		fmt.Printf("Lỗi tải dashboard: %v\n", err)
		return
	}

	fmt.Printf("Sinh viên: %s (%s)\n", view.StudentName, view.StudentEmail)
	fmt.Printf("Đơn đăng ký: tổng %d | chờ duyệt %d | được nhận %d | bị từ chối %d\n",
		view.Stats.Total, view.Stats.Pending, view.Stats.Accepted, view.Stats.Rejected)

	fmt.Println("\nPhòng đã xếp:")
	if len(view.AssignedRooms) == 0 {
		fmt.Println("  Chưa được xếp phòng nào.")
	}
	for _, rm := range view.AssignedRooms {
		fmt.Printf("  %s @ %s\n", rm.Room, rm.Hostel)
	}

	fmt.Println("\nThông báo:")
	if len(view.Notifications) == 0 {
		fmt.Println("  Không có thông báo.")
	}
	for _, n := range view.Notifications {
		fmt.Printf("  [%s] %s\n", utils.FormatTimestamp(n.CreatedAt), n.Message)
	}
}

func handleApplications(a *app) {
	view, err := a.dashboard.LoadDashboard()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotAuthenticated) {
			fmt.Println("Vui lòng đăng nhập trước (lệnh 'login').")
			return
		}
		fmt.Printf("Lỗi tải danh sách đơn: %v\n", err)
		return
	}

	if len(view.Applications) == 0 {
		fmt.Println("Chưa có đơn đăng ký nào.")
		return
	}
	for _, entry := range view.Applications {
		fmt.Printf("Phòng: %s — %s\n", entry.Room, entry.Status)
	}
}

func handleAdminHostels(a *app) {
	hostels, err := a.admin.ListHostels()
	if err != nil {
		fmt.Printf("Lỗi tải danh sách hostel: %v\n", err)
		return
	}
	fmt.Printf("%-5s %-25s %-35s %-10s %s\n", "ID", "Tên", "Mô tả", "Sức chứa", "Ảnh")
	fmt.Println(strings.Repeat("-", 100))
	for _, h := range hostels {
		photo := h.PhotoURL
		if photo == "" {
			photo = "—"
		}
		fmt.Printf("%-5d %-25s %-35s %-10d %s\n",
			h.ID,
			utils.TruncateString(h.Name, 25),
			utils.TruncateString(h.Description, 35),
			h.OccupancyLimit,
			utils.TruncateString(photo, 30))
	}
}

// promptHostelInput đọc form hostel, đổ sẵn giá trị cũ khi sửa.
func promptHostelInput(sc *bufio.Scanner, existing *dto.HostelInput) (*dto.HostelInput, bool) {
	input := &dto.HostelInput{}
	if existing != nil {
		*input = *existing
	}

	if v, ok := readLine(sc, "Tên: "); !ok {
		return nil, false
	} else if v != "" {
		input.Name = v
	}
	if v, ok := readLine(sc, "Mô tả: "); !ok {
		return nil, false
	} else if v != "" {
		input.Description = v
	}
	if v, ok := readLine(sc, "Địa chỉ: "); !ok {
		return nil, false
	} else if v != "" {
		input.Address = v
	}
	if v, ok := readLine(sc, "Sức chứa: "); !ok {
		return nil, false
	} else if v != "" {
		input.OccupancyLimit, _ = strconv.Atoi(v)
	}
	if v, ok := readLine(sc, "URL ảnh: "); !ok {
		return nil, false
	} else if v != "" {
		input.PhotoURL = v
	}
	return input, true
}

func handleSaveHostel(sc *bufio.Scanner, a *app, hostelID uint) {
	var existing *dto.HostelInput
	if hostelID != 0 {
		hostel, err := a.admin.GetHostel(hostelID)
		if err != nil {
			fmt.Printf("Không tải được hostel %d: %v\n", hostelID, err)
			return
		}
		existing = &dto.HostelInput{
			Name:           hostel.Name,
			Description:    hostel.Description,
			Address:        hostel.Address,
			OccupancyLimit: hostel.OccupancyLimit,
			PhotoURL:       hostel.PhotoURL,
		}
		fmt.Println("Bỏ trống trường nào thì giữ giá trị cũ.")
	}

	input, ok := promptHostelInput(sc, existing)
	if !ok {
		return
	}

	var cmd commands.Command
	if hostelID == 0 {
		cmd = commands.NewCreateHostelCommand(a.admin, *input)
	} else {
		cmd = commands.NewUpdateHostelCommand(a.admin, hostelID, *input)
	}
	if err := cmd.Execute(); err != nil {
		fmt.Printf("Lưu hostel thất bại: %v\n", err)
		return
	}
	fmt.Println("Đã lưu hostel.")
}

func handleEditHostel(sc *bufio.Scanner, a *app) {
	idStr, ok := readLine(sc, "ID hostel: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		fmt.Printf("ID hostel không hợp lệ: %s\n", idStr)
		return
	}
	handleSaveHostel(sc, a, uint(id))
}

func handleDeleteHostel(sc *bufio.Scanner, a *app) {
	idStr, ok := readLine(sc, "ID hostel: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		fmt.Printf("ID hostel không hợp lệ: %s\n", idStr)
		return
	}

	confirm, ok := readLine(sc, "Chắc chắn xóa? (y/n): ")
	if !ok || confirm != "y" {
		fmt.Println("Đã hủy.")
		return
	}

	if err := commands.NewDeleteHostelCommand(a.admin, uint(id)).Execute(); err != nil {
		fmt.Printf("Xóa hostel thất bại: %v\n", err)
		return
	}
	fmt.Println("Đã xóa hostel.")
}

func handleNotify(sc *bufio.Scanner, a *app) {
	userIDStr, ok := readLine(sc, "ID sinh viên: ")
	if !ok {
		return
	}
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		fmt.Printf("ID sinh viên không hợp lệ: %s\n", userIDStr)
		return
	}
	message, ok := readLine(sc, "Nội dung: ")
	if !ok {
		return
	}

	input := dto.NotificationInput{UserID: uint(userID), Message: message}
	if err := commands.NewSendNotificationCommand(a.admin, input).Execute(); err != nil {
		fmt.Printf("Gửi thông báo thất bại: %v\n", err)
		return
	}
	fmt.Println("Đã gửi thông báo.")
}
