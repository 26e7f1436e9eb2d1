// Package estsvc - service cho domain estrategia.
package estsvc

import (
	"context"
	"fmt"

	basesvc "aletheia/internal/api/base/service"
	dashmetrics "aletheia/internal/api/dashboard/metrics"
	"aletheia/internal/api/estrategia/models"
	"aletheia/internal/common"
	"aletheia/internal/global"
)

// EstItemService là service quản lý item estrategia trên một collection cụ thể
type EstItemService struct {
	*basesvc.BaseServiceMongoImpl[models.EstItem]
}

// NewEstItemService tạo mới EstItemService cho collection có tên colName.
// Năm resource estrategia dùng chung service này, khác nhau ở collection.
func NewEstItemService(colName string) (*EstItemService, error) {
	collection, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", colName, common.ErrNotFound)
	}

	return &EstItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.EstItem](collection),
	}, nil
}

// CalendarioAgrupado là lịch sự kiện nhóm theo ngày, ngày mới nhất trước
type CalendarioAgrupado struct {
	Fechas []string                    `json:"fechas"` // Các ngày theo thứ tự giảm dần
	Grupos map[string][]models.EstItem `json:"grupos"` // Item theo từng ngày
}

// FindAgrupado lấy toàn bộ item của collection và nhóm theo trường fecha
func (s *EstItemService) FindAgrupado(ctx context.Context) (*CalendarioAgrupado, error) {
	items, err := s.Find(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	grupos, fechas := dashmetrics.GroupByDate(items, func(item models.EstItem) string {
		return item.Fecha
	})

	return &CalendarioAgrupado{
		Fechas: fechas,
		Grupos: grupos,
	}, nil
}
