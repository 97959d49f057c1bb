package services

import (
	"bytes"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	"hostelhub/errors"
	"hostelhub/services/logger"
)

// TokenProvider trả về bearer token hiện tại, chuỗi rỗng khi chưa đăng
// nhập. Tách thành func để APIClient không phụ thuộc ngược vào session.
type TokenProvider func() string

// APIClient là transport JSON duy nhất tới backend REST. Mọi lỗi đều
// được chuyển thành AppError ở đây: lỗi mạng → UNAVAILABLE, status
// không thành công của GET → UNAVAILABLE, của thao tác ghi → REJECTED
// kèm message server trả (nếu có).
type APIClient struct {
	baseURL string
	client  *http.Client
	token   TokenProvider
	logger  logger.Logger
}

func NewAPIClient(baseURL string, token TokenProvider, log logger.Logger) *APIClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &APIClient{
		baseURL: baseURL,
		client:  http.DefaultClient,
		token:   token,
		logger:  log,
	}
}

// errorBody là body lỗi của backend: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// GetJSON gọi GET path và decode body vào out.
func (c *APIClient) GetJSON(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, out)
}

// PostJSON gọi POST path với body JSON; out có thể nil nếu chỉ cần ack.
func (c *APIClient) PostJSON(path string, body, out interface{}) error {
	return c.do(http.MethodPost, path, body, out)
}

// PutJSON gọi PUT path với body JSON.
func (c *APIClient) PutJSON(path string, body, out interface{}) error {
	return c.do(http.MethodPut, path, body, out)
}

// Delete gọi DELETE path.
func (c *APIClient) Delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil)
}

func (c *APIClient) do(method, path string, body, out interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		raw, err := gojson.Marshal(body)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Không encode được request body", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Không tạo được request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("lỗi gọi %s %s: %v", method, path, err)
		return errors.NewAppError(errors.ErrCodeUnavailable, "Không kết nối được backend", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeUnavailable, "Không đọc được response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := serverMessage(raw)
		c.logger.Error("%s %s trả về HTTP %d: %s", method, path, resp.StatusCode, message)
		if method == http.MethodGet {
			return errors.NewAppError(errors.ErrCodeUnavailable, message, nil)
		}
		return errors.NewAppError(errors.ErrCodeRejected, message, nil)
	}

	if out != nil && len(raw) > 0 {
		if err := gojson.Unmarshal(raw, out); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Response không phải JSON hợp lệ", err)
		}
	}
	return nil
}

// serverMessage đọc message lỗi server trả, có fallback chung khi body
// không parse được — message được surface nguyên văn cho người dùng.
func serverMessage(raw []byte) string {
	var body errorBody
	if err := gojson.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return "Yêu cầu bị từ chối"
}
