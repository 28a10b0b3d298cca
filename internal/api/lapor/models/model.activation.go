// Package models - model laporan aktivasi (satu baris spreadsheet).
package models

import "strings"

// Owner order dari sistem sumber
const (
	OwnerTSEL = "TSEL"
	OwnerBGES = "BGES"
	OwnerWMS  = "WMS"
)

// ActivationRecord adalah satu laporan aktivasi yang tersimpan di sheet LAPORAN.
// Semua field string; field yang tidak ditemukan parser bernilai string kosong.
type ActivationRecord struct {
	Tanggal       string `json:"tanggal"`       // Tanggal laporan, format panjang ("Senin, 1 September 2025")
	AO            string `json:"ao"`            // Nomor AO / reference id, kunci dedup
	Workorder     string `json:"workorder"`     // Nomor workorder
	NoLayanan     string `json:"noLayanan"`     // Nomor layanan (11-12 digit)
	NamaPelanggan string `json:"namaPelanggan"` // Nama pelanggan
	Owner         string `json:"owner"`         // Owner order: BGES / WMS / TSEL / kosong
	Workzone      string `json:"workzone"`      // Workzone / STO
	SNOnt         string `json:"snOnt"`         // Serial number ONT
	NikOnt        string `json:"nikOnt"`        // NIK ONT
	IDStb         string `json:"idStb"`         // ID STB (opsional)
	NikStb        string `json:"nikStb"`        // NIK STB (hanya berarti kalau IDStb ada)
	Teknisi       string `json:"teknisi"`       // Handle teknisi pelapor, tanpa "@"
}

// NormalizedAO mengembalikan nomor AO yang dinormalisasi untuk perbandingan
// dedup: di-trim dan di-uppercase.
func (r ActivationRecord) NormalizedAO() string {
	return strings.ToUpper(strings.TrimSpace(r.AO))
}

// ToRow mengubah record menjadi satu baris spreadsheet (urutan kolom tetap)
func (r ActivationRecord) ToRow() []string {
	return []string{
		r.Tanggal,
		r.AO,
		r.Workorder,
		r.NoLayanan,
		r.NamaPelanggan,
		r.Owner,
		r.Workzone,
		r.SNOnt,
		r.NikOnt,
		r.IDStb,
		r.NikStb,
		r.Teknisi,
	}
}

// FromRow membangun record dari satu baris spreadsheet.
// Baris pendek (sel kosong di ekor tidak dikirim API) tetap aman dibaca.
func FromRow(row []string) ActivationRecord {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return ActivationRecord{
		Tanggal:       cell(0),
		AO:            cell(1),
		Workorder:     cell(2),
		NoLayanan:     cell(3),
		NamaPelanggan: cell(4),
		Owner:         cell(5),
		Workzone:      cell(6),
		SNOnt:         cell(7),
		NikOnt:        cell(8),
		IDStb:         cell(9),
		NikStb:        cell(10),
		Teknisi:       cell(11),
	}
}

// HeaderRow adalah baris header sheet LAPORAN
func HeaderRow() []string {
	return []string{
		"TANGGAL", "AO", "WORKORDER", "NO LAYANAN", "NAMA PELANGGAN",
		"OWNER", "WORKZONE", "SN ONT", "NIK ONT", "ID STB", "NIK STB", "TEKNISI",
	}
}
