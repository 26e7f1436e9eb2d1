// Package enchdl - Fiber handler cho domain encuestas.
package enchdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "aletheia/internal/api/base/handler"
	dashstore "aletheia/internal/api/dashboard/store"
	"aletheia/internal/api/encuestas/dto"
	"aletheia/internal/api/encuestas/models"
	encsvc "aletheia/internal/api/encuestas/service"
	"aletheia/internal/common"
)

// EncuestaHandler xử lý các request liên quan đến khảo sát.
// Mỗi khảo sát tạo mới đồng thời được đẩy vào chuỗi tactical tracking
// của dashboard store để tính xu hướng.
type EncuestaHandler struct {
	basehdl.BaseHandler[models.Encuesta, dto.EncuestaCreateInput, dto.EncuestaUpdateInput]

	dashboard *dashstore.Store
}

// NewEncuestaHandler tạo mới EncuestaHandler
func NewEncuestaHandler(dashboard *dashstore.Store) (*EncuestaHandler, error) {
	encuestaService, err := encsvc.NewEncuestaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create encuesta service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[models.Encuesta, dto.EncuestaCreateInput, dto.EncuestaUpdateInput](encuestaService)
	return &EncuestaHandler{
		BaseHandler: *baseHandler,
		dashboard:   dashboard,
	}, nil
}

// InsertOne thêm mới một khảo sát và cập nhật chuỗi tactical tracking.
// Override InsertOne của base handler để sau khi lưu vào DB còn đẩy
// điểm dữ liệu (fecha, candidato, porcentaje) vào dashboard store.
func (h *EncuestaHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.EncuestaCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("El cuerpo de la solicitud no es un JSON válido o no coincide con la estructura esperada. Detalle: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Error al transformar los datos: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		if err == nil && h.dashboard != nil {
			h.dashboard.AddTacticalPoint(c.Context(), input.Fecha, input.Candidato, input.Porcentaje)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
