// Package config membaca konfigurasi aplikasi dari file env dan
// environment variables (pola godotenv + caarlos0/env).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration berisi seluruh konfigurasi statis yang dibutuhkan bot
type Configuration struct {
	// Telegram
	TelegramBotToken     string `env:"TELEGRAM_BOT_TOKEN,required"`               // Bot token dari BotFather
	TelegramChatIDs      string `env:"TELEGRAM_CHAT_IDS"`                         // Chat ID admin untuk rekap terjadwal, dipisah koma, contoh: "-123456789,-987654321"
	BotMode              string `env:"BOT_MODE" envDefault:"polling"`             // Mode bot: polling atau webhook
	WebhookSecretToken   string `env:"WEBHOOK_SECRET_TOKEN"`                      // Secret token untuk verifikasi webhook Telegram (wajib kalau BOT_MODE=webhook)
	PollTimeoutSeconds   int    `env:"POLL_TIMEOUT_SECONDS" envDefault:"30"`      // Timeout long polling getUpdates
	Address              string `env:"ADDRESS" envDefault:"8080"`                 // Port HTTP server (health + webhook)

	// Google Sheets (penyimpanan tabular bersama)
	SheetsCredentialsPath string `env:"SHEETS_CREDENTIALS_PATH,required"`   // Path service account JSON
	SpreadsheetID         string `env:"SPREADSHEET_ID,required"`            // ID spreadsheet rekapan
	SheetLaporan          string `env:"SHEET_LAPORAN" envDefault:"LAPORAN"` // Nama sheet data laporan aktivasi
	SheetUsers            string `env:"SHEET_USERS" envDefault:"USERS"`     // Nama sheet daftar pengguna

	// Mode validasi lama: butuh SN ONT + NIK ONT, bukan nomor AO
	LegacyMinimalMode bool `env:"LEGACY_MINIMAL_MODE" envDefault:"false"`

	// Rekap terjadwal
	RecapCronEnabled bool   `env:"RECAP_CRON_ENABLED" envDefault:"true"`
	RecapCronSpec    string `env:"RECAP_CRON_SPEC" envDefault:"0 20 * * *"` // Jam 20:00 WIB setiap hari

	// MongoDB (opsional - activity log)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI"`                // Kosong = activity log dimatikan
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"bot_rekapan"` // Nama database
}

// ChatIDList mengurai TELEGRAM_CHAT_IDS (dipisah koma) menjadi daftar chat ID.
// Token yang bukan angka dilewati.
func (c *Configuration) ChatIDList() []int64 {
	var ids []int64
	for _, token := range strings.Split(c.TelegramChatIDs, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// getEnvPath mengembalikan path file env sesuai environment: cari folder
// config/env dari working directory ke atas.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Pakai fmt.Printf karena logger mungkin belum di-init di sini
		fmt.Printf("Tidak bisa mendapatkan working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig membaca konfigurasi dari file env lalu dioverride environment variables
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env opsional; environment variables langsung juga didukung
			fmt.Printf("Tidak bisa load file env di %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Gagal parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
