package processor

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"homeverse/server/config"
	"homeverse/server/internal/database"
	"homeverse/server/internal/models"
	"homeverse/server/internal/queue"
)

// Transactor runs a function inside a database transaction. *gorm.DB satisfies it.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// BatchProcessor persists valuation batches taken from the queue
type BatchProcessor struct {
	db     Transactor
	logger *logrus.Logger
	config *config.Config
	queue  *queue.ValuationQueue
	once   sync.Once
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBatchProcessor creates a new batch processor instance
func NewBatchProcessor(db Transactor, queue *queue.ValuationQueue, config *config.Config, logger *logrus.Logger) *BatchProcessor {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &BatchProcessor{
		db:     db,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start subscribes the processor to the queue and starts the queue
func (p *BatchProcessor) Start() {
	p.once.Do(func() {
		p.queue.Subscribe(p.processBatch)
		p.queue.Start()
	})
}

// Stop closes the queue, letting buffered batches be written, then cancels
// any retry still waiting. It returns early if ctx expires first.
func (p *BatchProcessor) Stop(ctx context.Context) error {
	closed := make(chan struct{})
	go func() {
		_ = p.queue.Close()
		close(closed)
	}()

	select {
	case <-closed:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}

// processBatch writes a batch in a single transaction, retrying on failure
func (p *BatchProcessor) processBatch(batch []*models.ValuationRecord) error {
	maxRetries := p.config.BatchProcessing.MaxRetries
	delay := time.Duration(p.config.BatchProcessing.RetryDelay) * time.Millisecond

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying batch processing, attempt %d of %d", attempt, maxRetries)
			select {
			case <-time.After(delay):
			case <-p.ctx.Done():
				return fmt.Errorf("batch processing cancelled: %w", err)
			}
		}

		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := database.UpsertValuations(tx, batch); err != nil {
				return fmt.Errorf("failed to upsert valuations batch: %w", err)
			}
			return nil
		})

		if err == nil {
			p.logger.WithField("batch_size", len(batch)).Info("Successfully processed valuation batch")
			return nil
		}

		p.logger.WithError(err).Error("Batch processing failed")
	}

	return fmt.Errorf("failed to process batch after %d attempts: %w", maxRetries+1, err)
}
