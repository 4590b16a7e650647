package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"meta_tube/internal/global"
)

// InitDefaultData chuẩn bị các tài nguyên mặc định cần có trước khi nhận request.
// Hiện tại chỉ gồm thư mục chứa file upload tạm.
func InitDefaultData() {
	tempDir := global.MongoDB_ServerConfig.TempUploadDir
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create temp upload directory %s: %v", tempDir, err)
	}
	logrus.Infof("Ensured temp upload directory: %s", tempDir)
}
