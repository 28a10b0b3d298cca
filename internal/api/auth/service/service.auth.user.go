// Package authsvc berisi resolusi dan otorisasi pengguna dari sheet USERS.
package authsvc

import (
	"context"
	"fmt"
	"strings"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/auth/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// RowFetcher adalah bagian baca dari penyimpanan tabular
type RowFetcher interface {
	FetchRows(ctx context.Context, sheetName string) ([][]string, error)
}

// UserService membaca daftar pengguna dari sheet USERS. Daftar dikelola
// admin langsung di spreadsheet; service ini tidak pernah menulis.
type UserService struct {
	store     RowFetcher
	sheetName string
}

// NewUserService membuat service pengguna
func NewUserService(store RowFetcher, sheetName string) (*UserService, error) {
	if store == nil {
		return nil, fmt.Errorf("row store belum diinisialisasi: %w", common.ErrNotFound)
	}
	return &UserService{store: store, sheetName: sheetName}, nil
}

// ResolveUser mencari pengguna berdasarkan handle telegram (tanpa
// memperhatikan kapital dan "@" di depan). Tidak ketemu -> ErrUserNotFound;
// ketemu tapi nonaktif -> ErrUserInactive.
func (s *UserService) ResolveUser(ctx context.Context, handle string) (models.User, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if handle == "" {
		return models.User{}, common.ErrUserNotFound
	}

	rows, err := s.store.FetchRows(ctx, s.sheetName)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("🔐 [AUTH] Gagal membaca sheet pengguna")
		return models.User{}, common.ErrUpstreamIO
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		user := models.FromRow(row)
		if strings.EqualFold(user.Handle, handle) {
			if !user.IsActive() {
				return models.User{}, common.ErrUserInactive
			}
			return user, nil
		}
	}

	return models.User{}, common.ErrUserNotFound
}

// RequireAdmin seperti ResolveUser tapi menolak pengguna non-admin
func (s *UserService) RequireAdmin(ctx context.Context, handle string) (models.User, error) {
	user, err := s.ResolveUser(ctx, handle)
	if err != nil {
		return models.User{}, err
	}
	if !user.IsAdmin() {
		return models.User{}, common.ErrRoleForbidden
	}
	return user, nil
}
