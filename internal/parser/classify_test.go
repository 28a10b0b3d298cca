package parser

import "testing"

func TestClassify_EmpatFormat(t *testing.T) {
	cases := []struct {
		nama string
		raw  string
		mau  Format
	}{
		{"tsel channel digipos", "CHANNEL : DIGIPOS\nAO : SC000111", FormatTSEL},
		{"tsel date created", "date created : 01/09/2025\nAO : SC000112", FormatTSEL},
		{"tsel workorder", "WORKORDER : WO12345", FormatTSEL},
		{"bges indibiz", "ORDER INDIBIZ\nAO|JKT SC123456", FormatBGES},
		{"bges hsi", "paket hsi 100mbps", FormatBGES},
		{"wms", "provisioning WMS selesai", FormatWMS},
		{"wms mws", "order MWS aktif", FormatWMS},
		{"manual", "AO : SC999000\nNAMA : BUDI", FormatManual},
		{"kosong", "", FormatManual},
	}

	for _, tc := range cases {
		if dapat := Classify(tc.raw); dapat != tc.mau {
			t.Errorf("%s: Classify menghasilkan %s, seharusnya %s", tc.nama, dapat, tc.mau)
		}
	}
}

func TestClassify_PrioritasTSEL(t *testing.T) {
	// Marker TSEL menang walaupun teks juga menyebut WMS / HSI
	raw := "CHANNEL : DIGIPOS\nketerangan WMS HSI"
	if dapat := Classify(raw); dapat != FormatTSEL {
		t.Errorf("marker TSEL harus menang atas kata kunci lain, dapat %s", dapat)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	if dapat := Classify("channel : digipos"); dapat != FormatTSEL {
		t.Errorf("deteksi marker harus case-insensitive, dapat %s", dapat)
	}
}
