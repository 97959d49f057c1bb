package utils

import (
	"fmt"
	"time"
)

// FormatPrice hiển thị giá theo Ghana cedi, hai chữ số thập phân.
func FormatPrice(price float64) string {
	return fmt.Sprintf("GH₵%.2f", price)
}

// FormatTimestamp chuyển timestamp của server về dạng hiển thị. Server
// trả RFC3339; parse hỏng thì giữ nguyên chuỗi gốc thay vì làm vỡ dòng.
func FormatTimestamp(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Local().Format("02/01/2006 15:04")
}

// TruncateString cắt chuỗi cho vừa cột bảng CLI.
func TruncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return s[:maxLength]
	}
	return s[:maxLength-3] + "..."
}
