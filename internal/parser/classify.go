// Package parser berisi mesin ekstraksi teks laporan aktivasi: deteksi
// format sumber, ekstraksi field per pola regex, dan parsing tanggal.
// Seluruh fungsi di package ini pure (tanpa I/O) dan deterministik.
package parser

import "strings"

// Format adalah tag format teks sumber laporan
type Format string

const (
	FormatTSEL   Format = "TSEL"   // Export DIGIPOS / Telkomsel
	FormatBGES   Format = "BGES"   // Log provisioning BGES (INDIBIZ / HSI)
	FormatWMS    Format = "WMS"    // Log provisioning WMS / MWS
	FormatManual Format = "MANUAL" // Format manual label:nilai
)

// formatRule adalah satu aturan deteksi format (dievaluasi berurutan,
// aturan pertama yang cocok menang)
type formatRule struct {
	match func(upper string) bool
	tag   Format
}

// containsAny cek apakah teks mengandung salah satu marker
func containsAny(upper string, markers ...string) bool {
	for _, m := range markers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// formatRules diurutkan berdasarkan prioritas. TSEL dicek paling awal
// karena markernya bisa bentrok dengan kata kunci umum format lain.
var formatRules = []formatRule{
	{
		tag: FormatTSEL,
		match: func(upper string) bool {
			return containsAny(upper, "CHANNEL : DIGIPOS", "DATE CREATED", "WORKORDER : WO")
		},
	},
	{
		tag: FormatBGES,
		match: func(upper string) bool {
			return containsAny(upper, "INDIBIZ", "HSI")
		},
	},
	{
		tag: FormatWMS,
		match: func(upper string) bool {
			return containsAny(upper, "WMS", "MWS")
		},
	},
}

// Classify menentukan format teks laporan. Selalu mengembalikan tepat satu
// tag; teks yang tidak cocok aturan manapun dianggap format manual.
func Classify(raw string) Format {
	upper := strings.ToUpper(raw)
	for _, rule := range formatRules {
		if rule.match(upper) {
			return rule.tag
		}
	}
	return FormatManual
}
