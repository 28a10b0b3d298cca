// Package models - model pengguna bot (baris di sheet USERS).
package models

import "strings"

// Role dan status pengguna
const (
	RoleAdmin   = "ADMIN"
	RoleTeknisi = "TEKNISI"

	StatusAktif    = "AKTIF"
	StatusNonaktif = "NONAKTIF"
)

// User adalah satu pengguna terdaftar. Dikelola sepenuhnya di sheet USERS
// oleh admin; bot hanya membaca untuk otorisasi dan resolusi handle.
type User struct {
	Handle string `json:"handle"` // Handle telegram tanpa "@"
	Nama   string `json:"nama"`   // Nama lengkap
	Role   string `json:"role"`   // ADMIN / TEKNISI
	Status string `json:"status"` // AKTIF / NONAKTIF
}

// IsAdmin true kalau pengguna adalah admin
func (u User) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(u.Role), RoleAdmin)
}

// IsActive true kalau status pengguna aktif
func (u User) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(u.Status), StatusAktif)
}

// FromRow membangun User dari satu baris sheet USERS
func FromRow(row []string) User {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return User{
		Handle: strings.TrimPrefix(cell(0), "@"),
		Nama:   cell(1),
		Role:   cell(2),
		Status: cell(3),
	}
}
