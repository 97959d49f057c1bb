package services

import (
	"sync"

	"hostelhub/models"
	"hostelhub/services/logger"
)

// CatalogService fetch và giữ hai collection hostel/room cho cả đời
// process. Chỉ LoadCatalog được ghi cache; các thành phần khác đọc
// snapshot qua Hostels/Rooms.
type CatalogService struct {
	api    *APIClient
	logger logger.Logger

	hostels []models.Hostel
	rooms   []models.Room
	loaded  bool
}

func NewCatalogService(api *APIClient, log logger.Logger) *CatalogService {
	return &CatalogService{
		api:    api,
		logger: log,
	}
}

// LoadCatalog fetch song song cả hostel lẫn room; cả hai xong mới dùng
// được kết quả. Một trong hai lỗi thì toàn bộ thao tác lỗi và cache cũ
// (nếu có) được giữ nguyên — lần thử lại sau có thể thành công mà không
// hiển thị dữ liệu cũ như dữ liệu hỏng. Không tự retry.
func (s *CatalogService) LoadCatalog() ([]models.Hostel, []models.Room, error) {
	var (
		hostels   []models.Hostel
		rooms     []models.Room
		hostelErr error
		roomErr   error
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		hostelErr = s.api.GetJSON("/api/hostels", &hostels)
	}()
	go func() {
		defer wg.Done()
		roomErr = s.api.GetJSON("/api/rooms", &rooms)
	}()
	wg.Wait()

	if hostelErr != nil {
		return nil, nil, hostelErr
	}
	if roomErr != nil {
		return nil, nil, roomErr
	}

	s.hostels = hostels
	s.rooms = rooms
	s.loaded = true
	s.logger.Info("đã nạp catalog: %d hostel, %d phòng", len(hostels), len(rooms))
	return hostels, rooms, nil
}

// Loaded cho biết đã có snapshot nào trong cache chưa.
func (s *CatalogService) Loaded() bool {
	return s.loaded
}

// Hostels trả về snapshot hostel đang cache.
func (s *CatalogService) Hostels() []models.Hostel {
	return s.hostels
}

// Rooms trả về snapshot room đang cache.
func (s *CatalogService) Rooms() []models.Room {
	return s.rooms
}
