package bookingRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"roombook/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Optimistic WATCH/MULTI retries when another client touches the key. Waits grow
// from txBaseDelay up to txMaxDelay with full jitter, until ctx ends or
// maxTxAttempts is reached.
const (
	maxTxAttempts = 50
	txBaseDelay   = 5 * time.Millisecond
	txMaxDelay    = 250 * time.Millisecond
)

// LocalOptions tunes the Redis-backed demo store.
type LocalOptions struct {
	Key         string
	FetchDelay  time.Duration
	CreateDelay time.Duration
	NewID       IDGenerator
}

type localBookingRepo struct {
	client *redis.Client
	logger *zap.Logger
	opts   LocalOptions

	// mu serialises writers of this process; WATCH covers other processes.
	mu sync.Mutex
}

// NewLocalBookingRepo returns a BookingRepository that keeps the whole collection
// as one JSON array under a single Redis key.
func NewLocalBookingRepo(client *redis.Client, logger *zap.Logger, opts LocalOptions) BookingRepository {
	if opts.Key == "" {
		opts.Key = "hr_bookings_ru"
	}
	if opts.NewID == nil {
		opts.NewID = NewID
	}
	return &localBookingRepo{
		client: client,
		logger: logger.With(zap.String("component", "local_booking_repo"), zap.String("key", opts.Key)),
		opts:   opts,
	}
}

func (r *localBookingRepo) FetchAll(ctx context.Context) ([]models.Booking, error) {
	if err := sleep(ctx, r.opts.FetchDelay); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	bookings, err := readCollection(r.client.Get(ctx, r.opts.Key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return bookings, nil
}

// Create prepends the new booking and writes the full collection back atomically.
func (r *localBookingRepo) Create(ctx context.Context, in models.BookingCreationRequest) (*models.Booking, error) {
	if err := sleep(ctx, r.opts.CreateDelay); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	booking := in.ToBooking(r.opts.NewID())

	r.mu.Lock()
	defer r.mu.Unlock()

	txf := func(tx *redis.Tx) error {
		current, err := readCollection(tx.Get(ctx, r.opts.Key))
		if err != nil {
			return err
		}

		updated := make([]models.Booking, 0, len(current)+1)
		updated = append(updated, booking)
		updated = append(updated, current...)

		data, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("marshal bookings: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.opts.Key, data, 0)
			return nil
		})
		return err
	}

	var err error
	delay := txBaseDelay
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = r.client.Watch(ctx, txf, r.opts.Key)
		if err == nil {
			r.logger.Info("booking created", zap.String("id", booking.ID), zap.String("date", booking.Date))
			return &booking, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
		r.logger.Debug("concurrent write detected, retrying", zap.Int("attempt", attempt))
		if werr := sleep(ctx, jitter(delay)); werr != nil {
			err = fmt.Errorf("%w: %w", err, werr)
			break
		}
		delay = min(delay*2, txMaxDelay)
	}
	return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
}

// jitter picks a wait in [d/2, d].
func jitter(d time.Duration) time.Duration {
	half := d / 2
	return half + rand.N(half+1)
}

func (r *localBookingRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// readCollection decodes the stored array; an absent key yields the seed collection.
func readCollection(cmd *redis.StringCmd) ([]models.Booking, error) {
	data, err := cmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return SeedBookings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read bookings: %w", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("decode stored bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
