package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hostelhub/dto"
	"hostelhub/models"
)

// FilterHostels là hàm thuần từ (hostels, rooms, filters) ra danh sách
// (hostel, phòng khớp) để hiển thị. Thứ tự xử lý cố định: lọc toàn bộ
// phòng một lần trước, rồi mới xét từng hostel — mọi hostel đều nhìn
// cùng một pool phòng đã lọc. Thứ tự fetch gốc được giữ nguyên ở cả
// hai mức, không sort lại.
func FilterHostels(hostels []models.Hostel, rooms []models.Room, filters *dto.SearchFilters) []dto.HostelListing {
	if filters == nil {
		filters = &dto.SearchFilters{}
	}

	// Gom phòng đã lọc theo hostel_id một lần (O(rooms)) thay vì quét
	// lại toàn bộ phòng cho từng hostel; append giữ nguyên thứ tự fetch.
	roomsByHostel := make(map[uint][]models.Room)
	for _, room := range rooms {
		if !isRoomMatch(room, filters) {
			continue
		}
		roomsByHostel[room.HostelID] = append(roomsByHostel[room.HostelID], room)
	}

	listings := make([]dto.HostelListing, 0, len(hostels))
	for _, hostel := range hostels {
		if !isHostelMatch(hostel, filters) {
			continue
		}
		// Hostel qua được predicate luôn được giữ lại, kể cả khi không
		// còn phòng nào khớp — Rooms rỗng là trạng thái hiển thị.
		listings = append(listings, dto.HostelListing{
			Hostel: hostel,
			Rooms:  roomsByHostel[hostel.ID],
		})
	}
	return listings
}

// isRoomMatch xét các tiêu chí mức phòng. Tiêu chí 0/rỗng coi như tắt;
// mọi cận đều inclusive.
func isRoomMatch(room models.Room, filters *dto.SearchFilters) bool {
	if filters.MinPrice > 0 && room.Price < filters.MinPrice {
		return false
	}
	if filters.MaxPrice > 0 && room.Price > filters.MaxPrice {
		return false
	}
	if filters.MaxOccupancy > 0 && room.OccupancyLimit > filters.MaxOccupancy {
		return false
	}
	if filters.Amenities != "" {
		desc := strings.ToLower(room.Description)
		if !strings.Contains(desc, strings.ToLower(strings.TrimSpace(filters.Amenities))) {
			return false
		}
	}
	return true
}

// isHostelMatch xét các tiêu chí mức hostel; rớt tiêu chí nào là hostel
// bị loại cùng toàn bộ phòng của nó.
func isHostelMatch(hostel models.Hostel, filters *dto.SearchFilters) bool {
	if filters.Location != "" {
		addr := strings.ToLower(hostel.Address)
		if !strings.Contains(addr, strings.ToLower(strings.TrimSpace(filters.Location))) {
			return false
		}
	}
	if filters.Amenities != "" {
		desc := strings.ToLower(hostel.Description)
		if !strings.Contains(desc, strings.ToLower(strings.TrimSpace(filters.Amenities))) {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Gợi ý địa điểm khi bộ lọc không ra kết quả
// ---------------------------------------------------------------------------

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareAddressList gom các địa chỉ duy nhất đã chuẩn hóa.
func prepareAddressList(hostels []models.Hostel) []string {
	uniqueValues := make(map[string]bool)
	for _, h := range hostels {
		if h.Address != "" {
			uniqueValues[normalizeInput(h.Address)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// SuggestLocation gợi ý "có phải bạn muốn tìm..." khi tiêu chí địa điểm
// không khớp hostel nào. Chỉ phục vụ hiển thị, không bao giờ thay đổi
// kết quả lọc; trả chuỗi rỗng khi không có gợi ý đủ giống.
func SuggestLocation(query string, hostels []models.Hostel) string {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return ""
	}

	addresses := prepareAddressList(hostels)
	if len(addresses) == 0 {
		return ""
	}

	matcher := createMatcher(addresses)
	closest := matcher.Closest(normalizedQuery)
	if closest == "" {
		return ""
	}

	// Chặn gợi ý quá xa: yêu cầu độ tương đồng tối thiểu với từ khóa
	// hoặc chứa luôn từ khóa.
	if calculateSimilarity(normalizedQuery, closest) < 0.3 &&
		!strings.Contains(closest, normalizedQuery) {
		return ""
	}
	return closest
}
