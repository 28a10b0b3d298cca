package parser

import (
	"regexp"
	"strings"
)

// Pola serial ONT lintas format: teks export hulu tidak selalu melabeli
// field serial, jadi serial dikenali dari prefix brand vendor.
var reSNOntBrand = regexp.MustCompile(`\b((?:ZTEG|FHTT|HWTC|ALCL|CXNK|SCOM|YHTC|ZNTS)[A-Z0-9]{6,12})\b`)

// Pola baris log BGES/WMS
var (
	// "AO|...SC<6+ digit>", bisa muncul berkali-kali; yang TERAKHIR otoritatif
	// (log hulu menambahkan update di bawah)
	reAOLine = regexp.MustCompile(`(?i)AO\|[^\n]*?(SC\d{6,})`)

	// Token 11-12 digit berdiri sendiri; nomor layanan diambil dari yang terakhir
	reNoLayananToken = regexp.MustCompile(`\b(\d{11,12})\b`)

	// Baris "tanggal waktu hitungan NAMA<2+ spasi>"; kecocokan PERTAMA yang
	// dipakai (beda dengan aturan terakhir-menang untuk AO / nomor layanan)
	reNamaLine = regexp.MustCompile(`(?m)^\s*[0-9][0-9/\-]{5,9}\s+\d{1,2}:\d{2}(?::\d{2})?\s+\d+\s+(.+?)\s{2,}`)

	// "AO| <KATA KAPITAL>" adalah workzone, yang terakhir menang
	reWorkzoneLine = regexp.MustCompile(`AO\|\s+([A-Z]{2,})\b`)
)

// Rantai pola per field. Dicoba berurutan, capture non-kosong pertama menang.
var (
	chainAO = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bAO\s*:\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)\bAO\s+(SC[A-Z0-9-]{4,})`),
		regexp.MustCompile(`(?i)\bAO\s+([A-Z0-9-]{5,})`),
	}

	chainWorkorder = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bWORKORDER\s*:\s*(WO[A-Z0-9-]*)`),
		regexp.MustCompile(`(?i)\bWORKORDER\s*:\s*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)\bWO\s*:\s*([A-Z0-9-]+)`),
	}

	chainNoLayanan = []*regexp.Regexp{
		regexp.MustCompile(`(?i)SERVICE\s*NO\.?\s*:\s*(\d+)`),
		regexp.MustCompile(`(?i)NO\s*(?:LAYANAN|INET)\s*:\s*(\d+)`),
		reNoLayananToken,
	}

	chainNamaPelanggan = []*regexp.Regexp{
		regexp.MustCompile(`(?i)CUSTOMER\s*NAME\s*:\s*([^\n]+)`),
		regexp.MustCompile(`(?i)NAMA\s*(?:PELANGGAN)?\s*:\s*([^\n]+)`),
	}

	chainWorkzone = []*regexp.Regexp{
		regexp.MustCompile(`(?i)WORKZONE\s*:\s*([A-Z0-9]+)`),
		regexp.MustCompile(`(?i)\bSTO\s*:\s*([A-Z0-9]+)`),
	}

	chainSNOnt = []*regexp.Regexp{
		regexp.MustCompile(`(?i)SN\s*ONT\s*:\s*([A-Z0-9]+)`),
		reSNOntBrand,
	}

	chainNikOnt = []*regexp.Regexp{
		regexp.MustCompile(`(?i)NIK\s*ONT\s*:\s*(\d+)`),
		regexp.MustCompile(`(?i)\bNIK\s*:\s*(\d+)`),
	}

	chainIDStb = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ID\s*STB\s*:\s*([A-Z0-9-]+)`),
		// Di awal baris saja, supaya tidak menangkap baris "NIK STB : ..."
		regexp.MustCompile(`(?im)^\s*STB\s*:\s*([A-Z0-9-]+)`),
	}

	chainNikStb = []*regexp.Regexp{
		regexp.MustCompile(`(?i)NIK\s*STB\s*:\s*(\d+)`),
	}
)

// firstCapture mencoba rantai pola berurutan, mengembalikan capture pertama
// yang non-kosong; kosong kalau tidak ada yang cocok.
func firstCapture(raw string, chain []*regexp.Regexp) string {
	for _, re := range chain {
		if m := re.FindStringSubmatch(raw); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v
			}
		}
	}
	return ""
}

// lastCapture mengembalikan capture dari kecocokan TERAKHIR satu pola
func lastCapture(raw string, re *regexp.Regexp) string {
	matches := re.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimSpace(matches[len(matches)-1][1])
}
