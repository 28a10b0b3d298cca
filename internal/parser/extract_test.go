package parser

import (
	"reflect"
	"testing"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

const fixtureTSEL = `CHANNEL : DIGIPOS
AO : SC000111
SERVICE NO : 12345678901
CUSTOMER NAME : BUDI SANTOSO
SN ONT : ZTEGDA00001
NIK ONT : 111222333`

func TestExtract_TSEL(t *testing.T) {
	record := Extract(fixtureTSEL, "@teknisi1")

	if record.AO != "SC000111" {
		t.Errorf("AO salah: %q", record.AO)
	}
	if record.Workorder != "SC000111" {
		t.Errorf("tanpa field WORKORDER, workorder harus jatuh ke nomor AO, dapat %q", record.Workorder)
	}
	if record.NoLayanan != "12345678901" {
		t.Errorf("nomor layanan salah: %q", record.NoLayanan)
	}
	if record.NamaPelanggan != "BUDI SANTOSO" {
		t.Errorf("nama pelanggan salah: %q", record.NamaPelanggan)
	}
	if record.SNOnt != "ZTEGDA00001" {
		t.Errorf("SN ONT salah: %q", record.SNOnt)
	}
	if record.NikOnt != "111222333" {
		t.Errorf("NIK ONT salah: %q", record.NikOnt)
	}
	if record.Owner != models.OwnerTSEL {
		t.Errorf("owner salah: %q", record.Owner)
	}
	if record.Teknisi != "teknisi1" {
		t.Errorf("handle teknisi harus tanpa '@': %q", record.Teknisi)
	}
}

func TestExtract_TSEL_WorkorderEksplisit(t *testing.T) {
	raw := "CHANNEL : DIGIPOS\nAO : SC000333\nWORKORDER : WO98765"
	record := Extract(raw, "teknisi1")

	if record.Workorder != "WO98765" {
		t.Errorf("workorder eksplisit harus dipakai, dapat %q", record.Workorder)
	}
}

func TestExtract_TSEL_GuardSTB(t *testing.T) {
	// Tanpa ID STB, NIK STB tidak boleh terisi walaupun labelnya ada
	raw := "WORKORDER : WO777\nNIK ONT : 111222333\nNIK STB : 555666"
	record := Extract(raw, "teknisi1")

	if record.IDStb != "" {
		t.Errorf("ID STB harus kosong, dapat %q", record.IDStb)
	}
	if record.NikStb != "" {
		t.Errorf("NIK STB hanya boleh terisi kalau ID STB ketemu, dapat %q", record.NikStb)
	}

	// Dengan ID STB, NIK STB ikut terisi
	raw = "CHANNEL : DIGIPOS\nAO : SC000222\nID STB : STB001\nNIK STB : 555666"
	record = Extract(raw, "teknisi1")

	if record.IDStb != "STB001" {
		t.Errorf("ID STB salah: %q", record.IDStb)
	}
	if record.NikStb != "555666" {
		t.Errorf("NIK STB salah: %q", record.NikStb)
	}
}

const fixtureBGES = `ORDER INDIBIZ
AO| JAKSEL SC111222
01/09/2025 08:10 1 BUDI SANTOSO   paket 100mbps
nomor layanan lama 12345678901
update provisioning:
AO| JAKUT SC333444
02/09/2025 09:00 2 ANDI WIJAYA   paket 50mbps
nomor layanan baru 98765432109`

func TestExtract_BGES_TerakhirVsPertama(t *testing.T) {
	record := Extract(fixtureBGES, "teknisi2")

	// AO, nomor layanan, dan workzone: kecocokan TERAKHIR yang otoritatif
	if record.AO != "SC333444" {
		t.Errorf("AO harus dari kecocokan terakhir, dapat %q", record.AO)
	}
	if record.Workorder != "SC333444" {
		t.Errorf("workorder BGES mengikuti AO, dapat %q", record.Workorder)
	}
	if record.NoLayanan != "98765432109" {
		t.Errorf("nomor layanan harus token 11-12 digit terakhir, dapat %q", record.NoLayanan)
	}
	if record.Workzone != "JAKUT" {
		t.Errorf("workzone harus dari kecocokan terakhir, dapat %q", record.Workzone)
	}

	// Nama pelanggan: kecocokan PERTAMA (perilaku hulu, dipertahankan)
	if record.NamaPelanggan != "BUDI SANTOSO" {
		t.Errorf("nama pelanggan harus dari kecocokan pertama, dapat %q", record.NamaPelanggan)
	}

	if record.Owner != models.OwnerBGES {
		t.Errorf("owner salah: %q", record.Owner)
	}
}

func TestExtract_WMS_Owner(t *testing.T) {
	raw := "provisioning WMS\nAO| BTN SC777888\n03/09/2025 10:00 1 RINA MARLINA   ok"
	record := Extract(raw, "teknisi3")

	if record.Owner != models.OwnerWMS {
		t.Errorf("owner salah: %q", record.Owner)
	}
	if record.AO != "SC777888" {
		t.Errorf("AO salah: %q", record.AO)
	}
}

const fixtureManual = `AO : SC555000
NAMA : SITI AMINAH
WORKZONE : BDG
SN ONT : FHTT12AB34CD
NIK ONT : 123456
OWNER : bges`

func TestExtract_Manual(t *testing.T) {
	record := Extract(fixtureManual, "teknisi4")

	if record.AO != "SC555000" {
		t.Errorf("AO salah: %q", record.AO)
	}
	if record.NamaPelanggan != "SITI AMINAH" {
		t.Errorf("nama pelanggan salah: %q", record.NamaPelanggan)
	}
	if record.Workzone != "BDG" {
		t.Errorf("workzone salah: %q", record.Workzone)
	}
	if record.SNOnt != "FHTT12AB34CD" {
		t.Errorf("SN ONT salah: %q", record.SNOnt)
	}
	if record.Owner != "BGES" {
		t.Errorf("owner manual harus di-uppercase, dapat %q", record.Owner)
	}
}

func TestExtract_Manual_FallbackRegex(t *testing.T) {
	// Tanpa baris label SN ONT, serial tetap dikenali dari prefix brand
	raw := "AO : SC556000\nperangkat terpasang HWTC9F001122 kondisi baik"
	record := Extract(raw, "teknisi4")

	if record.SNOnt != "HWTC9F001122" {
		t.Errorf("serial harus ketemu lewat pola brand, dapat %q", record.SNOnt)
	}
}

func TestExtract_FieldHilangJadiKosong(t *testing.T) {
	record := Extract("teks bebas tanpa field sama sekali", "teknisi5")

	if record.AO != "" || record.NoLayanan != "" || record.SNOnt != "" {
		t.Errorf("field yang tidak ketemu harus string kosong: %+v", record)
	}
	if record.Teknisi != "teknisi5" {
		t.Errorf("teknisi harus selalu dari pengirim, dapat %q", record.Teknisi)
	}
}

func TestExtract_Idempoten(t *testing.T) {
	pertama := Extract(fixtureBGES, "teknisi2")
	kedua := Extract(fixtureBGES, "teknisi2")

	if !reflect.DeepEqual(pertama, kedua) {
		t.Errorf("ekstraksi ulang teks sama harus identik:\n%+v\n%+v", pertama, kedua)
	}
}
