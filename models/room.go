package models

// Room thuộc về đúng một Hostel qua khóa ngoại HostelID. Client phải
// chịu được room có hostel_id không khớp hostel nào đã fetch (orphan).
type Room struct {
	ID             uint    `json:"id"`
	HostelID       uint    `json:"hostel_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	OccupancyLimit int     `json:"occupancy_limit"`
	PhotoURL       string  `json:"photo_url,omitempty"`
}
