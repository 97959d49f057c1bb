package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// URL backend mặc định — bản deploy thật, có thể override bằng BACKEND_URL.
const defaultBackendURL = "https://student-hostel-backend-bd96.onrender.com"

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetBackendURL trả về base URL của backend REST
func GetBackendURL() string {
	if url := GetEnv("BACKEND_URL"); url != "" {
		return url
	}
	return defaultBackendURL
}

// GetSessionDBPath trả về đường dẫn file SQLite lưu phiên đăng nhập
func GetSessionDBPath() string {
	if path := GetEnv("SESSION_DB_PATH"); path != "" {
		return path
	}
	return "session.db"
}

// GetLogDir trả về thư mục ghi log
func GetLogDir() string {
	if dir := GetEnv("LOG_DIR"); dir != "" {
		return dir
	}
	return "logs"
}
