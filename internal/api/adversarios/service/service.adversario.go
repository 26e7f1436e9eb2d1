// Package advsvc - service cho domain adversarios.
package advsvc

import (
	"fmt"

	"aletheia/internal/api/adversarios/models"
	basesvc "aletheia/internal/api/base/service"
	"aletheia/internal/common"
	"aletheia/internal/global"
)

// AdversarioService là service quản lý đối thủ chính trị
type AdversarioService struct {
	*basesvc.BaseServiceMongoImpl[models.Adversario]
}

// NewAdversarioService tạo mới AdversarioService
func NewAdversarioService() (*AdversarioService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Adversarios)
	if !exist {
		return nil, fmt.Errorf("failed to get adversarios collection: %v", common.ErrNotFound)
	}

	return &AdversarioService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Adversario](collection),
	}, nil
}

// ActualizacionService là service quản lý các cập nhật về đối thủ
type ActualizacionService struct {
	*basesvc.BaseServiceMongoImpl[models.Actualizacion]
}

// NewActualizacionService tạo mới ActualizacionService
func NewActualizacionService() (*ActualizacionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdversarioActualizaciones)
	if !exist {
		return nil, fmt.Errorf("failed to get adversario_actualizaciones collection: %v", common.ErrNotFound)
	}

	return &ActualizacionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Actualizacion](collection),
	}, nil
}
