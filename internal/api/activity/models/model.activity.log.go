// Package models - model activity log bot (dokumen MongoDB).
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ActivityLog adalah jejak satu perintah yang diproses bot.
// Disimpan di MongoDB untuk audit; tidak dipakai jalur laporan utama.
type ActivityLog struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ChatID    int64              `json:"chatId" bson:"chatId"`       // Chat asal perintah
	Handle    string             `json:"handle" bson:"handle"`       // Handle pengirim (tanpa "@")
	Command   string             `json:"command" bson:"command"`     // Perintah yang dijalankan (contoh: /lapor)
	Status    string             `json:"status" bson:"status"`       // Hasil: OK / REJECTED / ERROR
	Detail    string             `json:"detail" bson:"detail"`       // Keterangan tambahan (pesan error, nomor AO, dst)
	CreatedAt int64              `json:"createdAt" bson:"createdAt"` // Unix millisecond
}

// Status hasil pemrosesan perintah
const (
	ActivityOK       = "OK"
	ActivityRejected = "REJECTED"
	ActivityError    = "ERROR"
)
