package config

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SessionDB là kho key/value bền vững cho phiên đăng nhập — tương đương
// localStorage của trình duyệt, giới hạn trong origin của backend.
type SessionDB struct {
	db *sql.DB
}

// OpenSessionDB mở (hoặc tạo) file SQLite tại dbPath và áp schema.
func OpenSessionDB(dbPath string) (*SessionDB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
        key   TEXT PRIMARY KEY,
        value TEXT NOT NULL
    );`); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session table: %w", err)
	}

	return &SessionDB{db: db}, nil
}

func (s *SessionDB) Close() error {
	return s.db.Close()
}

// Get đọc một giá trị; trả về chuỗi rỗng nếu khóa không tồn tại.
func (s *SessionDB) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

// SetAll ghi toàn bộ cặp khóa/giá trị trong một transaction — hoặc tất cả
// cùng được ghi, hoặc không khóa nào được ghi.
func (s *SessionDB) SetAll(pairs map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		if _, err := tx.Exec(
			`INSERT INTO session(key, value) VALUES(?, ?)
             ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value,
		); err != nil {
			return fmt.Errorf("set %q: %w", key, err)
		}
	}
	return tx.Commit()
}

// Clear xóa toàn bộ trạng thái phiên.
func (s *SessionDB) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session`)
	return err
}
