// Package storage - Test client dịch vụ lưu trữ media: ký request, upload multipart và xóa theo public ID.
package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meta_tube/internal/common"
)

// writeTempUpload tạo file tạm giả lập file client gửi lên
func writeTempUpload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.mp4")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSign(t *testing.T) {
	c := NewClient("http://storage.local", "key123", "secret456", time.Second, nil)

	params := map[string]string{
		"timestamp": "1700000000",
		"public_id": "videos/abc",
	}

	// Chuỗi ký: param sort theo key, nối key=value bằng "&", append api secret
	expected := sha1.Sum([]byte("public_id=videos/abc&timestamp=1700000000" + "secret456"))
	assert.Equal(t, hex.EncodeToString(expected[:]), c.sign(params))
}

func TestSign_Deterministic(t *testing.T) {
	c := NewClient("http://storage.local", "key", "secret", time.Second, nil)

	a := c.sign(map[string]string{"timestamp": "1", "public_id": "x"})
	b := c.sign(map[string]string{"public_id": "x", "timestamp": "1"})
	assert.Equal(t, a, b, "chữ ký không được phụ thuộc thứ tự param")
}

func TestUpload(t *testing.T) {
	var gotPath string
	var gotFields map[string]string
	var gotFileContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(10<<20))

		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				gotFields[k] = v[0]
			}
		}

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		gotFileContent = string(content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"secure_url": "https://cdn.local/videos/abc.mp4",
			"public_id": "videos/abc",
			"duration": 12.5,
			"resource_type": "video",
			"width": 1920,
			"height": 1080,
			"bytes": 1024
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key123", "secret456", 5*time.Second, nil)
	localPath := writeTempUpload(t, "nội dung video")

	result, err := c.Upload(context.Background(), localPath, ResourceVideo)
	require.NoError(t, err)

	assert.Equal(t, "/video/upload", gotPath)
	assert.Equal(t, "key123", gotFields["api_key"])
	assert.NotEmpty(t, gotFields["timestamp"])
	assert.NotEmpty(t, gotFields["signature"])
	assert.Equal(t, "nội dung video", gotFileContent)

	assert.Equal(t, "https://cdn.local/videos/abc.mp4", result.URL)
	assert.Equal(t, "videos/abc", result.PublicID)
	assert.Equal(t, 12.5, result.Duration)
	assert.Equal(t, "video", result.ResourceType)
	assert.Equal(t, int64(1024), result.Bytes)

	// File tạm phải được dọn sau khi upload thành công
	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr), "file tạm phải bị xóa sau upload")
}

func TestUpload_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"storage down"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", "secret", 5*time.Second, nil)
	localPath := writeTempUpload(t, "x")

	_, err := c.Upload(context.Background(), localPath, ResourceImage)
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeUpstream.Code, appErr.Code.Code)
	assert.Equal(t, common.StatusBadGateway, appErr.StatusCode)

	// File tạm bị dọn kể cả khi upload thất bại
	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpload_MissingURLInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"abc"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", "secret", 5*time.Second, nil)
	localPath := writeTempUpload(t, "x")

	_, err := c.Upload(context.Background(), localPath, ResourceImage)
	assert.True(t, errors.Is(err, common.ErrUpstreamStorage))
}

func TestUpload_EmptyPath(t *testing.T) {
	c := NewClient("http://storage.local", "key", "secret", time.Second, nil)
	_, err := c.Upload(context.Background(), "", ResourceVideo)
	assert.True(t, errors.Is(err, common.ErrRequiredField))
}

func TestUpload_DefaultResourceType(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"secure_url":"https://cdn.local/x","public_id":"x"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", "secret", 5*time.Second, nil)
	localPath := writeTempUpload(t, "x")

	result, err := c.Upload(context.Background(), localPath, "")
	require.NoError(t, err)
	assert.Equal(t, "/auto/upload", gotPath)
	// resource_type rỗng trong response rơi về loại đã yêu cầu
	assert.Equal(t, ResourceAuto, result.ResourceType)
}

func TestDelete(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				gotForm[k] = v[0]
			}
		}
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "key123", "secret456", 5*time.Second, nil)

	err := c.Delete(context.Background(), "videos/abc", ResourceVideo)
	require.NoError(t, err)

	assert.Equal(t, "/video/destroy", gotPath)
	assert.Equal(t, "videos/abc", gotForm["public_id"])
	assert.Equal(t, "key123", gotForm["api_key"])
	assert.NotEmpty(t, gotForm["signature"])
}

func TestDelete_EmptyPublicID(t *testing.T) {
	// publicID rỗng là no-op, không được gọi sang dịch vụ lưu trữ
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", "secret", time.Second, nil)
	assert.NoError(t, c.Delete(context.Background(), "", ResourceImage))
	assert.False(t, called)
}

func TestDelete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "key", "secret", 5*time.Second, nil)
	err := c.Delete(context.Background(), "videos/missing", ResourceVideo)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeUpstream.Code, appErr.Code.Code)
}
