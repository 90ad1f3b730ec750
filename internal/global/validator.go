package global

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("date_ymd", validateDateYMD)
}

// validateDateYMD kiểm tra chuỗi ngày theo định dạng yyyy-mm-dd.
// Chuỗi rỗng coi như hợp lệ (dùng kèm tag omitempty cho field optional).
func validateDateYMD(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
