package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình logging cho toàn ứng dụng
type LogConfig struct {
	Level      logrus.Level // Log level tối thiểu
	Format     string       // "text" hoặc "json"
	Output     string       // "file", "stdout" hoặc "both"
	Dir        string       // Thư mục chứa file log
	AppFile    string       // Tên file log chính
	ErrorFile  string       // Tên file log lỗi
	MaxSize    int          // Kích thước tối đa một file log (MB)
	MaxBackups int          // Số file cũ giữ lại
	MaxAge     int          // Số ngày giữ file log
	Compress   bool         // Nén file log cũ
}

// DefaultConfig trả về cấu hình logging mặc định, đọc từ environment variables.
// LOG_LEVEL: trace|debug|info|warn|error (mặc định info)
// LOG_OUTPUT: file|stdout|both (mặc định both)
// LOG_DIR: thư mục log (mặc định logs)
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      logrus.InfoLevel,
		Format:     "text",
		Output:     "both",
		Dir:        "logs",
		AppFile:    "app.log",
		ErrorFile:  "error.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := logrus.ParseLevel(strings.ToLower(lvl)); err == nil {
			cfg.Level = parsed
		}
	}
	if out := os.Getenv("LOG_OUTPUT"); out != "" {
		cfg.Output = out
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}
