package dto

import "hostelhub/models"

// SearchFilters là một snapshot bất biến của tiêu chí lọc catalog.
// Giá trị 0 hoặc chuỗi rỗng nghĩa là "không lọc theo tiêu chí này" —
// input form mặc định rỗng và ép kiểu số của chuỗi rỗng ra 0, nên 0
// không bao giờ được hiểu là "giá tối thiểu bằng 0".
type SearchFilters struct {
	Location     string  `json:"location,omitempty"`
	Amenities    string  `json:"amenities,omitempty"`
	MinPrice     float64 `json:"minPrice,omitempty"`
	MaxPrice     float64 `json:"maxPrice,omitempty"`
	MaxOccupancy int     `json:"maxOccupancy,omitempty"`
}

// IsEmpty cho biết bộ lọc không có tiêu chí nào đang bật.
func (f *SearchFilters) IsEmpty() bool {
	return f == nil ||
		(f.Location == "" && f.Amenities == "" &&
			f.MinPrice == 0 && f.MaxPrice == 0 && f.MaxOccupancy == 0)
}

// HostelListing là một hostel kèm các phòng khớp bộ lọc, sẵn sàng để
// hiển thị. Rooms rỗng là một trạng thái hiển thị ("không có phòng
// phù hợp"), không phải lý do loại hostel.
type HostelListing struct {
	Hostel models.Hostel `json:"hostel"`
	Rooms  []models.Room `json:"rooms"`
}
