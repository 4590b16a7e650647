// Package storage cung cấp client giao tiếp với dịch vụ lưu trữ media bên ngoài
// (upload video/ảnh, xóa file theo public ID). File tạm trên đĩa luôn được dọn
// sau khi upload, kể cả khi upload thất bại.
package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"meta_tube/internal/common"
	"meta_tube/internal/logger"
)

// ResourceType phân loại tài nguyên media trên dịch vụ lưu trữ
const (
	ResourceVideo = "video"
	ResourceImage = "image"
	ResourceAuto  = "auto"
)

// UploadResult là kết quả trả về từ dịch vụ lưu trữ sau khi upload thành công
type UploadResult struct {
	URL          string  `json:"secure_url"`    // URL công khai của file
	PublicID     string  `json:"public_id"`     // ID định danh file trên dịch vụ lưu trữ (dùng để xóa)
	Duration     float64 `json:"duration"`      // Thời lượng (giây), chỉ có với video
	ResourceType string  `json:"resource_type"` // Loại tài nguyên (video/image)
	Width        int     `json:"width"`         // Chiều rộng (pixel)
	Height       int     `json:"height"`        // Chiều cao (pixel)
	Bytes        int64   `json:"bytes"`         // Kích thước file
}

// Client giao tiếp với dịch vụ lưu trữ media qua REST API
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
}

// NewClient tạo mới một storage client.
// httpClient cho phép inject client tùy chỉnh khi test; nil sẽ dùng client mặc định với timeout.
func NewClient(baseURL, apiKey, apiSecret string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: httpClient,
	}
}

// Upload đẩy file từ đường dẫn local lên dịch vụ lưu trữ và xóa file tạm
// sau khi hoàn tất (thành công hay thất bại đều xóa).
func (c *Client) Upload(ctx context.Context, localPath string, resourceType string) (*UploadResult, error) {
	defer c.removeTempFile(localPath)

	if localPath == "" {
		return nil, common.ErrRequiredField
	}
	if resourceType == "" {
		resourceType = ResourceAuto
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Không đọc được file upload: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	defer file.Close()

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"timestamp": timestamp,
	}

	// Multipart body: file + api_key + timestamp + signature
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		var werr error
		defer func() {
			if werr != nil {
				pw.CloseWithError(werr)
				return
			}
			pw.CloseWithError(writer.Close())
		}()

		part, err := writer.CreateFormFile("file", filepath.Base(localPath))
		if err != nil {
			werr = err
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			werr = err
			return
		}
		fields := map[string]string{
			"api_key":   c.apiKey,
			"timestamp": timestamp,
			"signature": c.sign(params),
		}
		for k, v := range fields {
			if err := writer.WriteField(k, v); err != nil {
				werr = err
				return
			}
		}
	}()

	url := fmt.Sprintf("%s/%s/upload", c.baseURL, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Không tạo được request upload", common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Lỗi kết nối dịch vụ lưu trữ: %v", err),
			common.StatusBadGateway,
			err,
		)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Không đọc được response từ dịch vụ lưu trữ", common.StatusBadGateway, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Dịch vụ lưu trữ trả về lỗi (HTTP %d)", resp.StatusCode),
			common.StatusBadGateway,
			string(respBody),
		)
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, common.NewError(common.ErrCodeUpstream, "Response từ dịch vụ lưu trữ không hợp lệ", common.StatusBadGateway, err)
	}
	if result.URL == "" {
		return nil, common.ErrUpstreamStorage
	}
	if result.ResourceType == "" {
		result.ResourceType = resourceType
	}

	return &result, nil
}

// Delete xóa file trên dịch vụ lưu trữ theo public ID.
// Lỗi xóa được trả về cho caller quyết định; caller thường chỉ log chứ không fail
// request chính (xóa là best-effort trong saga).
func (c *Client) Delete(ctx context.Context, publicID string, resourceType string) error {
	if publicID == "" {
		return nil
	}
	if resourceType == "" {
		resourceType = ResourceImage
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}

	form := strings.NewReader(fmt.Sprintf(
		"public_id=%s&api_key=%s&timestamp=%s&signature=%s",
		publicID, c.apiKey, timestamp, c.sign(params),
	))

	url := fmt.Sprintf("%s/%s/destroy", c.baseURL, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, form)
	if err != nil {
		return common.NewError(common.ErrCodeUpstream, "Không tạo được request xóa media", common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Lỗi kết nối dịch vụ lưu trữ khi xóa media: %v", err),
			common.StatusBadGateway,
			err,
		)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return common.NewError(
			common.ErrCodeUpstream,
			fmt.Sprintf("Dịch vụ lưu trữ trả về lỗi khi xóa media (HTTP %d)", resp.StatusCode),
			common.StatusBadGateway,
			nil,
		)
	}

	return nil
}

// sign tạo chữ ký SHA1 theo quy ước của dịch vụ lưu trữ:
// các param (trừ api_key) sort theo key, nối key=value bằng "&", append api secret.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	h := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(h[:])
}

// removeTempFile xóa file tạm, chỉ log khi thất bại
func (c *Client) removeTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.GetAppLogger().WithField("path", path).WithError(err).Warn("Không xóa được file tạm sau upload")
	}
}
