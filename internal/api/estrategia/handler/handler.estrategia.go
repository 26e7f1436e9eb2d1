// Package esthdl - Fiber handler cho domain estrategia.
package esthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "aletheia/internal/api/base/handler"
	"aletheia/internal/api/estrategia/dto"
	"aletheia/internal/api/estrategia/models"
	estsvc "aletheia/internal/api/estrategia/service"
)

// EstItemHandler xử lý các request CRUD cho một resource estrategia
type EstItemHandler struct {
	basehdl.BaseHandler[models.EstItem, dto.EstItemCreateInput, dto.EstItemUpdateInput]

	itemService *estsvc.EstItemService
}

// NewEstItemHandler tạo mới EstItemHandler gắn với collection colName
func NewEstItemHandler(colName string) (*EstItemHandler, error) {
	itemService, err := estsvc.NewEstItemService(colName)
	if err != nil {
		return nil, fmt.Errorf("failed to create estrategia service for %s: %v", colName, err)
	}

	baseHandler := basehdl.NewBaseHandler[models.EstItem, dto.EstItemCreateInput, dto.EstItemUpdateInput](itemService)
	return &EstItemHandler{
		BaseHandler: *baseHandler,
		itemService: itemService,
	}, nil
}

// HandleAgrupado trả về toàn bộ item của resource nhóm theo ngày,
// ngày mới nhất đứng trước. Dùng cho lịch sự kiện (calendario).
func (h *EstItemHandler) HandleAgrupado(c fiber.Ctx) error {
	agrupado, err := h.itemService.FindAgrupado(c.Context())
	h.HandleResponse(c, agrupado, err)
	return nil
}
