package basehdl

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"aletheia/internal/common"
	"aletheia/internal/logger"
)

// ResponseEnvelope là cấu trúc chuẩn cho mọi response trả về client
type ResponseEnvelope struct {
	Code    int         `json:"code"`              // HTTP status code
	Message string      `json:"message"`           // Thông báo cho client
	Data    interface{} `json:"data,omitempty"`    // Dữ liệu trả về
	Details interface{} `json:"details,omitempty"` // Chi tiết lỗi (nếu có)
	Status  string      `json:"status"`            // "success" hoặc "error"
}

// JSONResponse ghi response dạng JSON với status code và Content-Type chuẩn
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("failed to marshal response payload")
		c.Status(common.StatusInternalServerError)
		c.Set("Content-Type", "application/json; charset=utf-8")
		return c.SendString(`{"code":500,"message":"` + common.MsgInternalError + `","status":"error"}`)
	}

	c.Status(statusCode)
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Send(body)
}

// HandleResponse xử lý response chung cho tất cả các handler.
// Nếu err là *common.Error thì trả về envelope lỗi với status code tương ứng,
// ngược lại trả về envelope thành công với data.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"code":   customErr.Code.Code,
				"path":   c.Path(),
				"method": c.Method(),
			}).Error(customErr.Message)

			return JSONResponse(c, customErr.StatusCode, ResponseEnvelope{
				Code:    customErr.StatusCode,
				Message: customErr.Message,
				Details: customErr.Details,
				Status:  "error",
			})
		}

		// Lỗi không xác định, không lộ chi tiết ra client
		logger.GetErrorLogger().WithError(err).WithFields(map[string]interface{}{
			"path":   c.Path(),
			"method": c.Method(),
		}).Error("unhandled error in request handler")

		return JSONResponse(c, common.StatusInternalServerError, ResponseEnvelope{
			Code:    common.StatusInternalServerError,
			Message: common.MsgInternalError,
			Status:  "error",
		})
	}

	return JSONResponse(c, common.StatusOK, ResponseEnvelope{
		Code:    common.StatusOK,
		Message: common.MsgSuccess,
		Data:    data,
		Status:  "success",
	})
}

// SafeHandler bọc logic handler với recover để tránh panic làm sập server
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, fn func() error) error {
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithFields(map[string]interface{}{
					"panic":  fmt.Sprintf("%v", r),
					"path":   c.Path(),
					"method": c.Method(),
				}).Error("panic recovered in request handler")

				err = JSONResponse(c, common.StatusInternalServerError, ResponseEnvelope{
					Code:    common.StatusInternalServerError,
					Message: common.MsgInternalError,
					Status:  "error",
				})
			}
		}()

		err = fn()
	}()

	return err
}

// SafeHandlerWrapper bọc một fiber.Handler với recover, dùng cho các route
// không đi qua BaseHandler
func SafeHandlerWrapper(handler fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		var err error

		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.GetErrorLogger().WithFields(map[string]interface{}{
						"panic":  fmt.Sprintf("%v", r),
						"path":   c.Path(),
						"method": c.Method(),
					}).Error("panic recovered in request handler")

					err = JSONResponse(c, common.StatusInternalServerError, ResponseEnvelope{
						Code:    common.StatusInternalServerError,
						Message: common.MsgInternalError,
						Status:  "error",
					})
				}
			}()

			err = handler(c)
		}()

		return err
	}
}
