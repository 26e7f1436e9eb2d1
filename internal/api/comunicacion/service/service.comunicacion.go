// Package comsvc - service cho domain comunicación.
package comsvc

import (
	"fmt"

	basesvc "aletheia/internal/api/base/service"
	"aletheia/internal/api/comunicacion/models"
	"aletheia/internal/common"
	"aletheia/internal/global"
)

// ComItemService là service quản lý item comunicación trên một collection cụ thể
type ComItemService struct {
	*basesvc.BaseServiceMongoImpl[models.ComItem]
}

// NewComItemService tạo mới ComItemService cho collection có tên colName.
// Năm resource comunicación dùng chung service này, khác nhau ở collection.
func NewComItemService(colName string) (*ComItemService, error) {
	collection, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", colName, common.ErrNotFound)
	}

	return &ComItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ComItem](collection),
	}, nil
}
