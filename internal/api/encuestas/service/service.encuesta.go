// Package encsvc - service cho domain encuestas.
package encsvc

import (
	"fmt"

	basesvc "aletheia/internal/api/base/service"
	"aletheia/internal/api/encuestas/models"
	"aletheia/internal/common"
	"aletheia/internal/global"
)

// EncuestaService là service quản lý kết quả khảo sát
type EncuestaService struct {
	*basesvc.BaseServiceMongoImpl[models.Encuesta]
}

// NewEncuestaService tạo mới EncuestaService
func NewEncuestaService() (*EncuestaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Encuestas)
	if !exist {
		return nil, fmt.Errorf("failed to get encuestas collection: %v", common.ErrNotFound)
	}

	return &EncuestaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Encuesta](collection),
	}, nil
}
