// Package dto - struktur validasi input laporan aktivasi.
package dto

// LaporInput memvalidasi record hasil ekstraksi pada alur standar:
// nomor AO wajib, field lain boleh kosong.
type LaporInput struct {
	AO      string `validate:"required" label:"Nomor AO"`
	Teknisi string `validate:"required" label:"Teknisi"`
}

// LaporInputLegacy memvalidasi record pada mode minimal lama
// (LEGACY_MINIMAL_MODE): SN ONT dan NIK ONT wajib bersamaan.
type LaporInputLegacy struct {
	SNOnt   string `validate:"required" label:"SN ONT"`
	NikOnt  string `validate:"required" label:"NIK ONT"`
	Teknisi string `validate:"required" label:"Teknisi"`
}
