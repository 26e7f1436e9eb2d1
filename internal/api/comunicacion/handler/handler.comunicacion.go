// Package comhdl - Fiber handler cho domain comunicación.
package comhdl

import (
	"fmt"

	basehdl "aletheia/internal/api/base/handler"
	"aletheia/internal/api/comunicacion/dto"
	"aletheia/internal/api/comunicacion/models"
	comsvc "aletheia/internal/api/comunicacion/service"
)

// ComItemHandler xử lý các request CRUD cho một resource comunicación
type ComItemHandler struct {
	basehdl.BaseHandler[models.ComItem, dto.ComItemCreateInput, dto.ComItemUpdateInput]
}

// NewComItemHandler tạo mới ComItemHandler gắn với collection colName
func NewComItemHandler(colName string) (*ComItemHandler, error) {
	itemService, err := comsvc.NewComItemService(colName)
	if err != nil {
		return nil, fmt.Errorf("failed to create comunicacion service for %s: %v", colName, err)
	}

	baseHandler := basehdl.NewBaseHandler[models.ComItem, dto.ComItemCreateInput, dto.ComItemUpdateInput](itemService)
	return &ComItemHandler{
		BaseHandler: *baseHandler,
	}, nil
}
