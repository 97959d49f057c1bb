package services

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dgrijalva/jwt-go"

	"hostelhub/config"
	"hostelhub/constants"
	"hostelhub/services/logger"
)

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

// makeToken dựng một token 3 đoạn với payload claims cho trước. Chữ ký
// là giả — client không verify chữ ký nên vậy là đủ.
func makeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	header := jwt.EncodeSegment([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + jwt.EncodeSegment(payload) + ".fakesig"
}

func tempSessionDB(t *testing.T) *config.SessionDB {
	t.Helper()
	db, err := config.OpenSessionDB(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("open session db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// loggedInSession tạo một phiên đã đăng nhập sẵn với user id cho trước.
func loggedInSession(t *testing.T, api *APIClient, userID uint) *SessionService {
	t.Helper()
	db := tempSessionDB(t)
	token := makeToken(t, map[string]interface{}{"id": float64(userID)})
	if err := db.SetAll(map[string]string{
		constants.StorageKeyToken:  token,
		constants.StorageKeyUserID: strconv.FormatUint(uint64(userID), 10),
	}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return NewSessionService(db, api, testLogger())
}
