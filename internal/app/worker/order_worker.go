package worker

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/repository"
)

// OrderSource yields placed order ids. Pop returns "" with a nil error when
// nothing arrived within timeout.
type OrderSource interface {
	Pop(ctx context.Context, timeout time.Duration) (string, error)
}

// OrderWorker consumes placed orders and logs a fulfillment summary for each.
// It never modifies orders or products.
type OrderWorker struct {
	source     OrderSource
	orderRepo  repository.OrderRepository
	logger     *slog.Logger
	popTimeout time.Duration
	errorPause time.Duration
}

func NewOrderWorker(source OrderSource, orderRepo repository.OrderRepository, logger *slog.Logger) *OrderWorker {
	return &OrderWorker{
		source:     source,
		orderRepo:  orderRepo,
		logger:     logger,
		popTimeout: 5 * time.Second,
		errorPause: 5 * time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (w *OrderWorker) Start(ctx context.Context) {
	w.logger.Info("order worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("order worker stopping")
			return
		default:
		}

		orderID, err := w.source.Pop(ctx, w.popTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			w.logger.Error("failed to pop from order queue", "error", err)
			w.pause(ctx)
			continue
		}
		if orderID == "" {
			continue
		}
		w.process(ctx, orderID)
	}
}

func (w *OrderWorker) pause(ctx context.Context) {
	t := time.NewTimer(w.errorPause)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func (w *OrderWorker) process(ctx context.Context, orderID string) {
	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			w.logger.Warn("queued order not found", "order_id", orderID)
			return
		}
		w.logger.Error("failed to load queued order", "order_id", orderID, "error", err)
		return
	}

	itemsTotal := order.ItemsTotal()
	if math.Abs(itemsTotal-order.TotalAmount) > 0.005 {
		w.logger.Warn("order total differs from item sum",
			"order_id", order.ID,
			"total_amount", order.TotalAmount,
			"items_total", itemsTotal,
		)
	}

	w.logger.Info("order ready for fulfillment",
		"order_id", order.ID,
		"user_id", order.UserID,
		"items", len(order.Items),
		"total_amount", order.TotalAmount,
	)
}
