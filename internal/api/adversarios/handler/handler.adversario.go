// Package advhdl - Fiber handler cho domain adversarios.
package advhdl

import (
	"fmt"

	"aletheia/internal/api/adversarios/dto"
	"aletheia/internal/api/adversarios/models"
	advsvc "aletheia/internal/api/adversarios/service"
	basehdl "aletheia/internal/api/base/handler"
)

// AdversarioHandler xử lý các request liên quan đến đối thủ chính trị
type AdversarioHandler struct {
	basehdl.BaseHandler[models.Adversario, dto.AdversarioCreateInput, dto.AdversarioUpdateInput]
}

// NewAdversarioHandler tạo mới AdversarioHandler
func NewAdversarioHandler() (*AdversarioHandler, error) {
	adversarioService, err := advsvc.NewAdversarioService()
	if err != nil {
		return nil, fmt.Errorf("failed to create adversario service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Adversario, dto.AdversarioCreateInput, dto.AdversarioUpdateInput](adversarioService)
	return &AdversarioHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// ActualizacionHandler xử lý các request liên quan đến cập nhật về đối thủ
type ActualizacionHandler struct {
	basehdl.BaseHandler[models.Actualizacion, dto.ActualizacionCreateInput, dto.ActualizacionUpdateInput]
}

// NewActualizacionHandler tạo mới ActualizacionHandler
func NewActualizacionHandler() (*ActualizacionHandler, error) {
	actService, err := advsvc.NewActualizacionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create actualizacion service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Actualizacion, dto.ActualizacionCreateInput, dto.ActualizacionUpdateInput](actService)
	return &ActualizacionHandler{
		BaseHandler: *baseHandler,
	}, nil
}
