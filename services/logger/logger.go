package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// FileLogger ghi log ra file theo ngày trong thư mục dir.
type FileLogger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
}

// NewFileLogger tạo logger ghi vào dir/app-YYYY-MM-DD.log. Không tạo
// được file thì rơi về DefaultLogger thay vì làm chết CLI.
func NewFileLogger(dir string, level Level) Logger {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Warning: không tạo được thư mục log %s: %v", dir, err)
		return NewDefaultLogger(level)
	}

	timestamp := time.Now().Format("2006-01-02")
	path := filepath.Join(dir, fmt.Sprintf("app-%s.log", timestamp))
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Warning: không mở được file log %s: %v", path, err)
		return NewDefaultLogger(level)
	}

	return &FileLogger{
		level:       level,
		infoLogger:  log.New(logFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(logFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

func (l *FileLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.infoLogger.Printf(format, v...)
	}
}

func (l *FileLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.errorLogger.Printf(format, v...)
	}
}

func (l *FileLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.infoLogger.Printf("DEBUG: "+format, v...)
	}
}
