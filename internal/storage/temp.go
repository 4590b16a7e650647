package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"meta_tube/internal/common"
)

// SaveTemp ghi file upload từ multipart form xuống thư mục tạm với tên ngẫu nhiên
// (giữ extension gốc) và trả về đường dẫn. Caller chịu trách nhiệm truyền đường dẫn
// này vào Client.Upload, nơi file tạm sẽ được dọn.
func SaveTemp(fileHeader *multipart.FileHeader, tempDir string) (string, error) {
	if fileHeader == nil {
		return "", common.ErrRequiredField
	}

	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không tạo được thư mục tạm: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Không đọc được file upload: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	destPath := filepath.Join(tempDir, uuid.NewString()+ext)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không ghi được file tạm: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		os.Remove(destPath)
		return "", common.NewError(
			common.ErrCodeInternalServer,
			fmt.Sprintf("Không ghi được file tạm: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	return destPath, nil
}
