package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ronin-planets/backend/internal/domain"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/storage"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// LedgerBackupCronJob uploads a snapshot of the ledger document to object
// storage under backups/<key>/<timestamp>.json.
type LedgerBackupCronJob struct {
	ledger   *domain.Ledger
	storage  storage.Storage
	bucket   string
	key      string
	interval time.Duration
}

func NewLedgerBackupCronJob(
	ledger *domain.Ledger,
	storage storage.Storage,
	bucket, key string,
	interval time.Duration,
) *LedgerBackupCronJob {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	return &LedgerBackupCronJob{
		ledger:   ledger,
		storage:  storage,
		bucket:   bucket,
		key:      key,
		interval: interval,
	}
}

func (job *LedgerBackupCronJob) Do(ctx context.Context) {
	if _, err := job.Backup(ctx, time.Now()); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot backup ledger: %v", err)
	}
}

// Backup uploads the current document and returns the object key.
func (job *LedgerBackupCronJob) Backup(ctx context.Context, now time.Time) (string, error) {
	var data []byte
	err := job.ledger.View(ctx, func(doc *entity.Document) error {
		var err error
		data, err = json.Marshal(doc)
		return err
	})
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("backups/%s/%s.json", job.key, now.UTC().Format("20060102T150405Z"))
	_, err = job.storage.Upload(ctx, &storage.UploadObject{
		Bucket: job.bucket,
		Key:    objectKey,
		Mime:   "application/json",
		Data:   data,
	})
	if err != nil {
		return "", err
	}

	xcontext.Logger(ctx).Infof("Ledger backed up to %s/%s", job.bucket, objectKey)
	return objectKey, nil
}

func (job *LedgerBackupCronJob) RunNow() bool {
	return false
}

func (job *LedgerBackupCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
