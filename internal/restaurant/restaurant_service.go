package restaurant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	LocationsKey = "restaurants:all"
	locationsTTL = time.Hour
)

type Service interface {
	List(ctx context.Context) ([]LocationResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("restaurant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("restaurant.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// List serves locations from redis; they change rarely, so an hour of
// staleness is accepted.
func (s *service) List(ctx context.Context) ([]LocationResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, LocationsKey).Result(); err == nil {
			var resp []LocationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(LocationsKey, func() (interface{}, error) {
		locations, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list restaurant locations failed", zap.Error(err))
			return nil, err
		}
		resp := make([]LocationResponse, len(locations))
		for i, l := range locations {
			resp[i] = LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address}
		}
		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, LocationsKey, data, locationsTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LocationResponse), nil
}
