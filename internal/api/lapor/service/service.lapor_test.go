package laporsvc

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
	"github.com/rezhamata/BOT-REKAPAN/internal/parser"
)

func TestMain(m *testing.M) {
	os.Setenv("LOG_OUTPUT", "stdout")
	global.InitValidator()
	os.Exit(m.Run())
}

// fakeStore adalah RowStore in-memory untuk test
type fakeStore struct {
	rows      [][]string
	fetchErr  error
	appendErr error
	replaced  [][]string
}

func (f *fakeStore) FetchRows(_ context.Context, _ string) ([][]string, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.rows, nil
}

func (f *fakeStore) AppendRow(_ context.Context, _ string, row []string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeStore) ReplaceRows(_ context.Context, _ string, rows [][]string) error {
	f.replaced = rows
	f.rows = rows
	return nil
}

func newFakeStore(dataRows ...[]string) *fakeStore {
	rows := [][]string{{"TANGGAL", "AO"}}
	rows = append(rows, dataRows...)
	return &fakeStore{rows: rows}
}

const teksLaporanTSEL = `CHANNEL : DIGIPOS
AO : SC000111
SERVICE NO : 12345678901
SN ONT : ZTEGDA00001
NIK ONT : 111222333`

func TestSubmit_Tersimpan(t *testing.T) {
	store := newFakeStore()
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	record, err := svc.Submit(context.Background(), teksLaporanTSEL, "@teknisi1")
	require.NoError(t, err)

	assert.Equal(t, "SC000111", record.AO)
	assert.Equal(t, "SC000111", record.Workorder, "workorder harus jatuh ke nomor AO")
	assert.Equal(t, "teknisi1", record.Teknisi)

	// Tanggal laporan diisi saat simpan dan harus bisa diurai balik
	_, ok := parser.ParseTanggalLapor(record.Tanggal)
	assert.True(t, ok, "tanggal laporan harus valid: %q", record.Tanggal)

	require.Len(t, store.rows, 2, "satu baris data harus ter-append")
	assert.Equal(t, "SC000111", store.rows[1][global.ColAO])
}

func TestSubmit_DuplikatDitolak(t *testing.T) {
	// Varian kapital dan spasi tetap terdeteksi duplikat
	store := newFakeStore([]string{"Senin, 15 September 2025", "SC123456 "})
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "WORKORDER : WO1\nAO : sc123456", "teknisi1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDuplicate), "harus ErrDuplicate, dapat %v", err)

	assert.Len(t, store.rows, 2, "laporan duplikat tidak boleh ter-append")
}

func TestSubmit_FieldWajibKurang(t *testing.T) {
	store := newFakeStore()
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "teks bebas tanpa nomor AO", "teknisi1")
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, common.ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Contains(t, appErr.Message, "Nomor AO", "pesan harus menyebut field yang kurang")
}

func TestSubmit_ModeLegacy(t *testing.T) {
	store := newFakeStore()
	svc, err := NewLaporService(store, "LAPORAN", true)
	require.NoError(t, err)

	// Mode legacy: nomor AO boleh kosong, SN ONT + NIK ONT wajib
	_, err = svc.Submit(context.Background(), "SN ONT : ZTEGAA11BB22\nNIK ONT : 12345", "teknisi1")
	assert.NoError(t, err)

	// Tanpa pasangan ONT, laporan ditolak walaupun ada nomor AO
	_, err = svc.Submit(context.Background(), "AO : SC999888", "teknisi1")
	require.Error(t, err)

	var appErr *common.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "SN ONT")
	assert.Contains(t, appErr.Message, "NIK ONT")
}

func TestSubmit_GagalBacaStore(t *testing.T) {
	store := &fakeStore{fetchErr: errors.New("sheets down")}
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), teksLaporanTSEL, "teknisi1")
	assert.True(t, errors.Is(err, common.ErrUpstreamIO), "harus ErrUpstreamIO, dapat %v", err)
}

func TestSubmit_GagalAppend(t *testing.T) {
	store := newFakeStore()
	store.appendErr = errors.New("sheets down")
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), teksLaporanTSEL, "teknisi1")
	assert.True(t, errors.Is(err, common.ErrUpstreamIO), "harus ErrUpstreamIO, dapat %v", err)
}

func TestCleanupDuplicates(t *testing.T) {
	store := newFakeStore(
		[]string{"Senin, 15 September 2025", "SC000111"},
		[]string{"Senin, 15 September 2025", "sc000111"},
		[]string{"Selasa, 16 September 2025", "SC000222"},
		[]string{"Selasa, 16 September 2025", "SC000111 "},
	)
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	removed, err := svc.CleanupDuplicates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// Header + kemunculan pertama tiap AO yang bertahan
	require.Len(t, store.replaced, 3)
	assert.Equal(t, "SC000111", store.replaced[1][global.ColAO])
	assert.Equal(t, "SC000222", store.replaced[2][global.ColAO])
}

func TestCleanupDuplicates_SudahBersih(t *testing.T) {
	store := newFakeStore(
		[]string{"Senin, 15 September 2025", "SC000111"},
		[]string{"Selasa, 16 September 2025", "SC000222"},
	)
	svc, err := NewLaporService(store, "LAPORAN", false)
	require.NoError(t, err)

	removed, err := svc.CleanupDuplicates(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Nil(t, store.replaced, "sheet bersih tidak perlu ditimpa ulang")
}
