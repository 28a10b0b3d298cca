package authsvc

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rezhamata/BOT-REKAPAN/internal/common"
)

func TestMain(m *testing.M) {
	os.Setenv("LOG_OUTPUT", "stdout")
	os.Exit(m.Run())
}

type fakeFetcher struct {
	rows [][]string
	err  error
}

func (f *fakeFetcher) FetchRows(_ context.Context, _ string) ([][]string, error) {
	return f.rows, f.err
}

func newTestService(t *testing.T) *UserService {
	t.Helper()
	svc, err := NewUserService(&fakeFetcher{rows: [][]string{
		{"HANDLE", "NAMA", "ROLE", "STATUS"},
		{"@admin1", "Pak Admin", "ADMIN", "AKTIF"},
		{"teknisi1", "Budi", "TEKNISI", "aktif"},
		{"nonaktif1", "Mantan", "TEKNISI", "NONAKTIF"},
	}}, "USERS")
	if err != nil {
		t.Fatalf("NewUserService error: %v", err)
	}
	return svc
}

func TestResolveUser(t *testing.T) {
	svc := newTestService(t)

	// Handle dicocokkan tanpa kapital dan tanpa "@"
	user, err := svc.ResolveUser(context.Background(), "@TEKNISI1")
	if err != nil {
		t.Fatalf("ResolveUser error: %v", err)
	}
	if user.Handle != "teknisi1" || user.Nama != "Budi" {
		t.Errorf("user salah: %+v", user)
	}

	// "@" di sheet juga dibuang saat pencocokan
	if _, err := svc.ResolveUser(context.Background(), "admin1"); err != nil {
		t.Errorf("handle dengan '@' di sheet harus tetap ketemu: %v", err)
	}
}

func TestResolveUser_TidakTerdaftar(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ResolveUser(context.Background(), "orangasing")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Errorf("harus ErrUserNotFound, dapat %v", err)
	}

	_, err = svc.ResolveUser(context.Background(), "")
	if !errors.Is(err, common.ErrUserNotFound) {
		t.Errorf("handle kosong harus ErrUserNotFound, dapat %v", err)
	}
}

func TestResolveUser_Nonaktif(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ResolveUser(context.Background(), "nonaktif1")
	if !errors.Is(err, common.ErrUserInactive) {
		t.Errorf("harus ErrUserInactive, dapat %v", err)
	}
}

func TestRequireAdmin(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.RequireAdmin(context.Background(), "admin1"); err != nil {
		t.Errorf("admin aktif harus lolos: %v", err)
	}

	_, err := svc.RequireAdmin(context.Background(), "teknisi1")
	if !errors.Is(err, common.ErrRoleForbidden) {
		t.Errorf("teknisi harus ditolak ErrRoleForbidden, dapat %v", err)
	}
}
