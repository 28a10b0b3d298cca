package report

import (
	"sort"
	"strings"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

// GroupCount adalah satu kunci kelompok dengan jumlah laporannya
type GroupCount struct {
	Key   string
	Count int
}

// Summary adalah hasil agregasi satu kumpulan record
type Summary struct {
	Total       int
	PerTeknisi  []GroupCount
	PerWorkzone []GroupCount
	PerOwner    []GroupCount
}

// normalizeKey menormalkan kunci kelompok: trim, buang "@" depan, uppercase.
// Kunci kosong jadi placeholder "-".
func normalizeKey(s string) string {
	s = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "@"))
	if s == "" {
		return "-"
	}
	return s
}

// tally menghitung kemunculan tiap kunci lalu mengurutkan menurun
// berdasarkan jumlah. Seri jumlah mempertahankan urutan kemunculan pertama
// di input (sort stabil).
func tally(keys []string) []GroupCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, k := range keys {
		k = normalizeKey(k)
		if _, ada := counts[k]; !ada {
			order = append(order, k)
		}
		counts[k]++
	}

	hasil := make([]GroupCount, 0, len(order))
	for _, k := range order {
		hasil = append(hasil, GroupCount{Key: k, Count: counts[k]})
	}

	sort.SliceStable(hasil, func(i, j int) bool {
		return hasil[i].Count > hasil[j].Count
	})

	return hasil
}

// Aggregate mengelompokkan dan menghitung record per teknisi, workzone,
// dan owner, masing-masing sudah terurut peringkat.
func Aggregate(records []models.ActivationRecord) Summary {
	teknisi := make([]string, 0, len(records))
	workzone := make([]string, 0, len(records))
	owner := make([]string, 0, len(records))

	for _, r := range records {
		teknisi = append(teknisi, r.Teknisi)
		workzone = append(workzone, r.Workzone)
		owner = append(owner, r.Owner)
	}

	return Summary{
		Total:       len(records),
		PerTeknisi:  tally(teknisi),
		PerWorkzone: tally(workzone),
		PerOwner:    tally(owner),
	}
}

// TopN memotong daftar peringkat ke n teratas (n <= 0 berarti semua)
func TopN(list []GroupCount, n int) []GroupCount {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}
