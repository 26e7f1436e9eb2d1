package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"aletheia/config"
	"aletheia/internal/database"
	"aletheia/internal/global"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.DashboardSnapshots = "dashboard_snapshots"

	global.MongoDB_ColNames.Avisos = "avisos"
	global.MongoDB_ColNames.Adversarios = "adversarios"
	global.MongoDB_ColNames.AdversarioActualizaciones = "adversario_actualizaciones"

	// Module comunicación (tiền tố comunicacion_)
	global.MongoDB_ColNames.ComPublicidad = "comunicacion_publicidad"
	global.MongoDB_ColNames.ComMateriales = "comunicacion_materiales"
	global.MongoDB_ColNames.ComEarnedMedia = "comunicacion_earned_media"
	global.MongoDB_ColNames.ComPrensaPagada = "comunicacion_prensa_pagada"
	global.MongoDB_ColNames.ComVocerias = "comunicacion_vocerias"

	// Module estrategia (tiền tố estrategia_)
	global.MongoDB_ColNames.EstDiaD = "estrategia_dia_d"
	global.MongoDB_ColNames.EstDebate = "estrategia_debate"
	global.MongoDB_ColNames.EstPrecampana = "estrategia_precampana"
	global.MongoDB_ColNames.EstCalendario = "estrategia_calendario"
	global.MongoDB_ColNames.EstPlaneacion = "estrategia_planeacion"

	global.MongoDB_ColNames.Encuestas = "encuestas"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, region, percentage, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các index cho các collection
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if err := database.CreateDashboardIndexes(context.TODO(), db); err != nil {
		logrus.Errorf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
