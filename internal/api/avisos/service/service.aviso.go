// Package avisvc - service cho resource avisos.
package avisvc

import (
	"fmt"

	"aletheia/internal/api/avisos/models"
	basesvc "aletheia/internal/api/base/service"
	"aletheia/internal/common"
	"aletheia/internal/global"
)

// AvisoService là service quản lý avisos
type AvisoService struct {
	*basesvc.BaseServiceMongoImpl[models.Aviso]
}

// NewAvisoService tạo mới AvisoService
func NewAvisoService() (*AvisoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Avisos)
	if !exist {
		return nil, fmt.Errorf("failed to get avisos collection: %v", common.ErrNotFound)
	}

	return &AvisoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Aviso](collection),
	}, nil
}
