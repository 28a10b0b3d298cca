package report

import (
	"bytes"
	"encoding/csv"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/lapor/models"
)

// BuildCSV menyusun berkas CSV (header + satu baris per record) untuk
// dikirim sebagai dokumen lewat perintah ekspor.
func BuildCSV(records []models.ActivationRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.HeaderRow()); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write(r.ToRow()); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
