package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tenantops/tenant-admin-api/internal/config"
	"github.com/tenantops/tenant-admin-api/internal/domain"
	"github.com/tenantops/tenant-admin-api/internal/repository"
	"github.com/tenantops/tenant-admin-api/internal/service/queue"
	"github.com/tenantops/tenant-admin-api/pkg/logger"
)

// ArchiveWorker consumes backup-archive jobs from SQS, takes a fresh
// snapshot of the tenant, and uploads it to S3.
type ArchiveWorker struct {
	sqsService   *queue.SQSService
	repository   repository.Repository
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
	s3Client     *s3.Client
	s3Config     *config.S3Config
	sqsConfig    *config.SQSConfig
}

func NewArchiveWorker(
	sqsService *queue.SQSService,
	repository repository.Repository,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
	s3Client *s3.Client,
	s3Config *config.S3Config,
	sqsConfig *config.SQSConfig,
) *ArchiveWorker {
	return &ArchiveWorker{
		sqsService:   sqsService,
		repository:   repository,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
		s3Client:     s3Client,
		s3Config:     s3Config,
		sqsConfig:    sqsConfig,
	}
}

func (w *ArchiveWorker) Start() {
	w.logger.Info("Starting archive workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *ArchiveWorker) Stop() {
	w.logger.Info("Stopping archive workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All archive workers stopped")
}

func (w *ArchiveWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Archive worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Archive worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Archive worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *ArchiveWorker) processMessages(ctx context.Context) error {
	queueURL := w.sqsConfig.ArchiveQueueURL

	messages, err := w.sqsService.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if msg.Message.Type != queue.MessageTypeArchiveBackup {
			continue
		}

		if err := w.processArchiveMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process archive message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ArchiveWorker) processArchiveMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Archiving backup for tenant %s", msg.TenantID)

	doc, err := w.snapshot(ctx, msg.TenantID)
	if err != nil {
		return fmt.Errorf("failed to snapshot tenant %s: %w", msg.TenantID, err)
	}

	if err := w.uploadToS3(ctx, msg.TenantID, doc); err != nil {
		return fmt.Errorf("failed to archive backup for tenant %s: %w", msg.TenantID, err)
	}

	w.logger.Infof("Successfully archived %d rows for tenant %s to S3", doc.RowCount(), msg.TenantID)
	return nil
}

// snapshot builds a backup document straight from the repository. The worker
// runs without a caller identity; authorization happened when the archive
// job was enqueued.
func (w *ArchiveWorker) snapshot(ctx context.Context, tenantID string) (*domain.BackupDocument, error) {
	doc := domain.NewBackupDocument()
	for _, table := range domain.BackupTables {
		rows, err := w.repository.Backup().FetchTableRows(ctx, table, tenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
		}
		doc.Tables[table] = rows
	}

	tenantRow, err := w.repository.Backup().FetchTenantRow(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant: %w", err)
	}
	doc.Tenant = tenantRow

	return doc, nil
}

func (w *ArchiveWorker) uploadToS3(ctx context.Context, tenantID string, doc *domain.BackupDocument) error {
	now := time.Now()
	s3Key := fmt.Sprintf("tenant-backups/%s/backup_%s.json", tenantID, now.Format("2006-01-02_15-04-05"))

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup document: %w", err)
	}

	contentType := "application/json"
	_, err = w.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &w.s3Config.BucketName,
		Key:         &s3Key,
		Body:        bytes.NewReader(jsonData),
		ContentType: &contentType,
		Metadata: map[string]string{
			"tenant-id":   tenantID,
			"archived-at": now.Format(time.RFC3339),
			"row-count":   fmt.Sprintf("%d", doc.RowCount()),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload backup to S3: %w", err)
	}

	w.logger.Infof("Uploaded backup to s3://%s/%s", w.s3Config.BucketName, s3Key)
	return nil
}
