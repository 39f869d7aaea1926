package bookingRepo

import (
	"context"
	"fmt"
	"net/http"

	"roombook/config"
	"roombook/database"
	"roombook/utils"

	"go.uber.org/zap"
)

// New selects the storage variant named by cfg.StorageBackend. It is called once at startup.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (BookingRepository, error) {
	switch cfg.StorageBackend {
	case config.BackendRemote:
		client := &http.Client{Timeout: cfg.RemoteTimeout}
		return NewRemoteBookingRepo(cfg.APIURL, client, logger, NewID), nil

	case config.BackendLocal:
		client, err := utils.GetCacheClient()
		if err != nil {
			return nil, err
		}
		return NewLocalBookingRepo(client, logger, LocalOptions{
			Key:         cfg.BookingsKey,
			FetchDelay:  cfg.LocalDelayFetch,
			CreateDelay: cfg.LocalDelayCreate,
			NewID:       NewID,
		}), nil

	case config.BackendMongo:
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		repo := NewMongoBookingRepo(database.MongoClient.Database(cfg.MongoDatabase), logger, NewID)
		if err := repo.(*mongoBookingRepo).EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
