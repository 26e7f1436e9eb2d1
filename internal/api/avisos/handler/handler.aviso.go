// Package avihdl - Fiber handler cho resource avisos.
package avihdl

import (
	"fmt"

	"aletheia/internal/api/avisos/dto"
	"aletheia/internal/api/avisos/models"
	avisvc "aletheia/internal/api/avisos/service"
	basehdl "aletheia/internal/api/base/handler"
)

// AvisoHandler xử lý các request liên quan đến avisos
type AvisoHandler struct {
	basehdl.BaseHandler[models.Aviso, dto.AvisoCreateInput, dto.AvisoUpdateInput]
}

// NewAvisoHandler tạo mới AvisoHandler
func NewAvisoHandler() (*AvisoHandler, error) {
	avisoService, err := avisvc.NewAvisoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create aviso service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Aviso, dto.AvisoCreateInput, dto.AvisoUpdateInput](avisoService)
	return &AvisoHandler{
		BaseHandler: *baseHandler,
	}, nil
}
