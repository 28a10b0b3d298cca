package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

func TestBuildCSV(t *testing.T) {
	records := []models.ActivationRecord{
		{Tanggal: "Senin, 15 September 2025", AO: "SC000111", Teknisi: "budi"},
		{Tanggal: "Selasa, 16 September 2025", AO: "SC000222", NamaPelanggan: "SITI, AMINAH", Teknisi: "andi"},
	}

	data, err := BuildCSV(records)
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("hasil CSV tidak bisa dibaca balik: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("harus 1 header + 2 data, dapat %d baris", len(rows))
	}
	if rows[0][0] != "TANGGAL" {
		t.Errorf("header salah: %v", rows[0])
	}
	if rows[1][1] != "SC000111" {
		t.Errorf("baris data salah: %v", rows[1])
	}
	// Koma dalam nilai harus selamat lewat quoting CSV
	if rows[2][4] != "SITI, AMINAH" {
		t.Errorf("nilai mengandung koma rusak: %v", rows[2])
	}
}

func TestBuildCSV_Kosong(t *testing.T) {
	data, err := BuildCSV(nil)
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("hasil CSV tidak bisa dibaca balik: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("tanpa record harus tinggal header saja, dapat %d baris", len(rows))
	}
}
