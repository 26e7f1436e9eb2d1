// Package router - đăng ký route cho domain comunicación.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	comhdl "aletheia/internal/api/comunicacion/handler"
	apirouter "aletheia/internal/api/router"
	"aletheia/internal/global"
)

// Register đăng ký năm resource comunicación dưới /api/v1/comunicacion/*
func Register(v1 fiber.Router, r *apirouter.Router) error {
	resources := []struct {
		prefix  string
		colName string
	}{
		{"/comunicacion/publicidad", global.MongoDB_ColNames.ComPublicidad},
		{"/comunicacion/materiales", global.MongoDB_ColNames.ComMateriales},
		{"/comunicacion/earned-media", global.MongoDB_ColNames.ComEarnedMedia},
		{"/comunicacion/prensa-pagada", global.MongoDB_ColNames.ComPrensaPagada},
		{"/comunicacion/voceros", global.MongoDB_ColNames.ComVocerias},
	}

	for _, res := range resources {
		itemHandler, err := comhdl.NewComItemHandler(res.colName)
		if err != nil {
			return fmt.Errorf("failed to create comunicacion handler for %s: %v", res.prefix, err)
		}
		r.RegisterCRUDRoutes(v1, res.prefix, itemHandler, apirouter.ReadWriteConfig)
	}
	return nil
}
