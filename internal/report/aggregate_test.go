package report

import (
	"strings"
	"testing"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

func rekamTeknisi(teknisi string) models.ActivationRecord {
	return models.ActivationRecord{Teknisi: teknisi}
}

func TestTally_PeringkatDanSeriStabil(t *testing.T) {
	// A:3, B:5, C:5: B dan C seri di atas A; B duluan karena muncul lebih awal
	var keys []string
	keys = append(keys, "A", "A", "A")
	keys = append(keys, "B", "B", "B", "B", "B")
	keys = append(keys, "C", "C", "C", "C", "C")

	hasil := tally(keys)
	if len(hasil) != 3 {
		t.Fatalf("jumlah kelompok salah: %d", len(hasil))
	}
	if hasil[0].Key != "B" || hasil[1].Key != "C" || hasil[2].Key != "A" {
		t.Errorf("urutan peringkat salah: %+v", hasil)
	}
	if hasil[0].Count != 5 || hasil[2].Count != 3 {
		t.Errorf("jumlah salah: %+v", hasil)
	}
}

func TestTally_Normalisasi(t *testing.T) {
	hasil := tally([]string{"@budi", "BUDI", " budi ", ""})

	if len(hasil) != 2 {
		t.Fatalf("normalisasi kunci gagal: %+v", hasil)
	}
	if hasil[0].Key != "BUDI" || hasil[0].Count != 3 {
		t.Errorf("varian kapital/@/spasi harus tergabung: %+v", hasil)
	}
	if hasil[1].Key != "-" || hasil[1].Count != 1 {
		t.Errorf("kunci kosong harus jadi placeholder '-': %+v", hasil)
	}
}

func TestAggregate(t *testing.T) {
	records := []models.ActivationRecord{
		{Teknisi: "budi", Workzone: "JAKSEL", Owner: models.OwnerBGES},
		{Teknisi: "BUDI", Workzone: "JAKUT", Owner: models.OwnerBGES},
		{Teknisi: "andi", Workzone: "JAKSEL", Owner: models.OwnerWMS},
	}

	s := Aggregate(records)
	if s.Total != 3 {
		t.Errorf("total salah: %d", s.Total)
	}
	if s.PerTeknisi[0].Key != "BUDI" || s.PerTeknisi[0].Count != 2 {
		t.Errorf("peringkat teknisi salah: %+v", s.PerTeknisi)
	}
	if s.PerWorkzone[0].Key != "JAKSEL" || s.PerWorkzone[0].Count != 2 {
		t.Errorf("peringkat workzone salah: %+v", s.PerWorkzone)
	}
	if s.PerOwner[0].Key != "BGES" || s.PerOwner[0].Count != 2 {
		t.Errorf("peringkat owner salah: %+v", s.PerOwner)
	}
}

func TestTopN(t *testing.T) {
	list := []GroupCount{{"A", 5}, {"B", 4}, {"C", 3}}

	if dapat := TopN(list, 2); len(dapat) != 2 {
		t.Errorf("TopN(2) harus 2 entri, dapat %d", len(dapat))
	}
	if dapat := TopN(list, 10); len(dapat) != 3 {
		t.Errorf("TopN lebih besar dari daftar harus kembalikan semua, dapat %d", len(dapat))
	}
	if dapat := TopN(list, 0); len(dapat) != 3 {
		t.Errorf("TopN(0) harus kembalikan semua, dapat %d", len(dapat))
	}
}

func TestFormatRekap(t *testing.T) {
	records := []models.ActivationRecord{
		{Teknisi: "budi", Workzone: "JAKSEL", Owner: models.OwnerBGES},
		{Teknisi: "budi", Workzone: "JAKUT", Owner: models.OwnerWMS},
	}
	window, adaWindow := WindowFor(PeriodeHarian, anchorSenin)

	teks := FormatRekap(PeriodeHarian, window, adaWindow, Aggregate(records))

	if !strings.Contains(teks, "REKAP AKTIVASI HARIAN") {
		t.Errorf("judul laporan hilang:\n%s", teks)
	}
	if !strings.Contains(teks, "Senin, 15 September 2025") {
		t.Errorf("tanggal jendela hilang:\n%s", teks)
	}
	if !strings.Contains(teks, "Total laporan: 2") {
		t.Errorf("total laporan hilang:\n%s", teks)
	}
	if !strings.Contains(teks, "1. BUDI (2)") {
		t.Errorf("peringkat teknisi hilang:\n%s", teks)
	}
}

func TestFormatRekap_TanpaData(t *testing.T) {
	window, adaWindow := WindowFor(PeriodeSemua, anchorSenin)
	teks := FormatRekap(PeriodeSemua, window, adaWindow, Aggregate(nil))

	if !strings.Contains(teks, "Belum ada data") {
		t.Errorf("laporan kosong harus menyebut belum ada data:\n%s", teks)
	}
	if strings.Contains(teks, "s.d.") {
		t.Errorf("periode semua tidak boleh menampilkan jendela tanggal:\n%s", teks)
	}
}
