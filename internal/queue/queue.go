package queue

import (
	"errors"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"homeverse/server/internal/models"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// Handler consumes one batch of valuation records
type Handler func([]*models.ValuationRecord) error

// ValuationQueue is an in-memory queue of valuation batches waiting to be persisted
type ValuationQueue struct {
	items    chan []*models.ValuationRecord
	done     chan struct{}
	finished chan struct{}
	started  bool
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []Handler
}

// NewValuationQueue creates a queue holding at most bufferSize pending batches
func NewValuationQueue(bufferSize int, logger *logrus.Logger) *ValuationQueue {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}

	return &ValuationQueue{
		items:    make(chan []*models.ValuationRecord, bufferSize),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		logger:   logger,
	}
}

// Push adds a batch without blocking the caller
func (q *ValuationQueue) Push(records []*models.ValuationRecord) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- records:
		q.logger.WithField("batch_size", len(records)).Debug("Pushed batch to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler that is called for each batch
func (q *ValuationQueue) Subscribe(handler Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue. Calling it twice has no effect.
func (q *ValuationQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.closed {
		return
	}
	q.started = true
	go q.process()
}

func (q *ValuationQueue) process() {
	defer close(q.finished)
	for {
		select {
		case <-q.done:
			q.drain()
			return
		case batch := <-q.items:
			q.processBatch(batch)
		}
	}
}

// drain hands the batches still buffered at close time to the handlers
func (q *ValuationQueue) drain() {
	for {
		select {
		case batch := <-q.items:
			q.processBatch(batch)
		default:
			return
		}
	}
}

func (q *ValuationQueue) processBatch(batch []*models.ValuationRecord) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(batch); err != nil {
			q.logger.WithError(err).Error("Handler failed to process batch")
		}
	}
}

// Close stops accepting batches and waits until the pending ones are handled
func (q *ValuationQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	started := q.started
	close(q.done)
	q.mu.Unlock()

	if started {
		<-q.finished
	}
	return nil
}

// Len returns the current number of batches in the queue
func (q *ValuationQueue) Len() int {
	return len(q.items)
}

func (q *ValuationQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
