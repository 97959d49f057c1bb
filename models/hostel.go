package models

// Hostel là một khu ký túc xá chứa nhiều phòng. Client chỉ đọc; mọi
// thay đổi đi qua mặt quản trị và backend là nguồn sự thật.
type Hostel struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Address        string `json:"address,omitempty"`
	OccupancyLimit int    `json:"occupancy_limit"`
	PhotoURL       string `json:"photo_url,omitempty"`
}
