// Package global menyimpan variabel global aplikasi: singleton yang
// diinisialisasi sekali di cmd/server lalu dipakai bersama.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rezhamata/BOT-REKAPAN/config"
	"github.com/rezhamata/BOT-REKAPAN/internal/registry"
)

// MongoDB_CollectionName berisi nama collection MongoDB yang dipakai bot
type MongoDB_CollectionName struct {
	ActivityLogs string // Nama collection untuk activity log bot
}

// Nama kolom spreadsheet laporan (baris 0 = header)
const (
	ColTanggal       = 0  // Tanggal laporan (format panjang: "Senin, 1 September 2025")
	ColAO            = 1  // Nomor AO / reference id (kunci dedup)
	ColWorkorder     = 2  // Nomor workorder
	ColNoLayanan     = 3  // Nomor layanan (11-12 digit)
	ColNamaPelanggan = 4  // Nama pelanggan
	ColOwner         = 5  // Owner order (BGES/WMS/TSEL)
	ColWorkzone      = 6  // Workzone / STO
	ColSNOnt         = 7  // Serial number ONT
	ColNikOnt        = 8  // NIK ONT
	ColIDStb         = 9  // ID STB (opsional)
	ColNikStb        = 10 // NIK STB (opsional, hanya kalau ada STB)
	ColTeknisi       = 11 // Handle teknisi pelapor (tanpa "@")

	JumlahKolom = 12 // Total kolom satu baris laporan
)

// Nama kolom sheet USERS
const (
	UserColHandle = 0 // Handle telegram (tanpa "@")
	UserColNama   = 1 // Nama lengkap
	UserColRole   = 2 // Role: ADMIN / TEKNISI
	UserColStatus = 3 // Status: AKTIF / NONAKTIF
)

// Variabel global aplikasi
var Validate *validator.Validate                            // Validator untuk input laporan
var ServerConfig *config.Configuration                      // Konfigurasi aplikasi
var MongoDB_Session *mongo.Client                           // Sesi koneksi MongoDB (nil kalau activity log dimatikan)
var MongoDB_ColNames = *new(MongoDB_CollectionName)         // Nama collection MongoDB
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry collection MongoDB
