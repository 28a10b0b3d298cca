package main

import (
	"github.com/sirupsen/logrus"

	"github.com/rezhamata/BOT-REKAPAN/config"
	"github.com/rezhamata/BOT-REKAPAN/internal/database"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
)

// InitGlobal menginisialisasi seluruh variabel global aplikasi
func InitGlobal() {
	initColNames()         // Nama collection MongoDB
	initValidator()        // Validator input laporan
	initConfig()           // Konfigurasi aplikasi
	initDatabase_MongoDB() // Koneksi MongoDB (opsional)
}

// initColNames mengisi nama collection MongoDB yang dipakai bot
func initColNames() {
	global.MongoDB_ColNames.ActivityLogs = "bot_activity_logs"
	logrus.Info("Initialized collection names")
}

// initValidator mendaftarkan validator global beserta custom validation
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig membaca konfigurasi dari file env dan environment variables
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB membuka koneksi MongoDB untuk activity log.
// URI kosong berarti activity log dimatikan; bot tetap jalan penuh.
func initDatabase_MongoDB() {
	if global.ServerConfig.MongoDB_ConnectionURI == "" {
		logrus.Warn("MONGODB_CONNECTION_URI kosong, activity log dimatikan")
		return
	}

	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
}

// InitRegistry mendaftarkan collection MongoDB ke registry global
func InitRegistry() {
	if global.MongoDB_Session == nil {
		return
	}

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	if _, err := global.RegistryCollections.Register(
		global.MongoDB_ColNames.ActivityLogs,
		db.Collection(global.MongoDB_ColNames.ActivityLogs),
	); err != nil {
		logrus.Fatalf("Failed to register collection: %v", err)
	}

	logrus.Info("Initialized collection registry")
}
