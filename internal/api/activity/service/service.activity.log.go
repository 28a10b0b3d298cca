// Package activitysvc berisi pencatatan activity log perintah bot ke MongoDB.
package activitysvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	models "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/global"
	"github.com/rezhamata/BOT-REKAPAN/internal/logger"
)

// ActivityService menulis jejak perintah ke collection activity log.
// Kalau MongoDB tidak dikonfigurasi, service berjalan dalam mode no-op:
// pencatatan dilewati tanpa mengganggu pemrosesan perintah.
type ActivityService struct {
	coll *mongo.Collection
}

// NewActivityService membuat service activity log. Collection nil (MongoDB
// dimatikan) menghasilkan service no-op, bukan error.
func NewActivityService() (*ActivityService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ActivityLogs)
	if !ok {
		logger.GetAppLogger().Warn("📝 [ACTIVITY] MongoDB tidak aktif, activity log dilewati")
		return &ActivityService{coll: nil}, nil
	}
	return &ActivityService{coll: coll}, nil
}

// Record menulis satu entri activity log. Kegagalan tulis hanya dicatat di
// log aplikasi; tidak pernah menggagalkan perintah yang sedang diproses.
func (s *ActivityService) Record(ctx context.Context, chatID int64, handle, command, status, detail string) {
	if s.coll == nil {
		return
	}

	entry := models.ActivityLog{
		ChatID:    chatID,
		Handle:    handle,
		Command:   command,
		Status:    status,
		Detail:    detail,
		CreatedAt: time.Now().UnixMilli(),
	}

	insertCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.coll.InsertOne(insertCtx, entry); err != nil {
		logger.GetErrorLogger().WithError(err).WithField("command", command).
			Error("📝 [ACTIVITY] Gagal menulis activity log")
	}
}
