package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/6DaddyCoders9/Salon-App/internal/domain/entity"
	domainRepo "github.com/6DaddyCoders9/Salon-App/internal/domain/repository"
	"github.com/6DaddyCoders9/Salon-App/pkg/appwrite"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const serviceCenterCacheKeyPrefix = "service_center:"

// cachedServiceCenterRepository keeps single-document lookups in Redis.
// Cache failures are logged and fall through to the platform.
type cachedServiceCenterRepository struct {
	next        domainRepo.ServiceCenterRepository
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCachedServiceCenterRepository(
	next domainRepo.ServiceCenterRepository,
	redisClient *redis.Client,
	log *logrus.Logger,
	ttl time.Duration,
) domainRepo.ServiceCenterRepository {
	return &cachedServiceCenterRepository{
		next:        next,
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (r *cachedServiceCenterRepository) FindAll(ctx context.Context, client *appwrite.Client) ([]entity.ServiceCenter, error) {
	centers, err := r.next.FindAll(ctx, client)
	if err != nil {
		return nil, err
	}
	r.store(ctx, centers...)
	return centers, nil
}

func (r *cachedServiceCenterRepository) Search(ctx context.Context, client *appwrite.Client, title string) ([]entity.ServiceCenter, error) {
	return r.next.Search(ctx, client, title)
}

// FindByID serves entries shared by every session. Only a catalog readable by
// all users may be cached this way.
func (r *cachedServiceCenterRepository) FindByID(ctx context.Context, client *appwrite.Client, id string) (*entity.ServiceCenter, error) {
	if id == "" {
		return nil, nil
	}
	key := serviceCenterCacheKeyPrefix + id

	cached, err := r.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var center entity.ServiceCenter
		if err := json.Unmarshal(cached, &center); err == nil {
			return &center, nil
		}
		r.log.Warnf("Discarding corrupt cache entry %s", key)
	case err != redis.Nil:
		r.log.Warnf("Failed to read service center %s from cache: %+v", id, err)
	}

	center, err := r.next.FindByID(ctx, client, id)
	if err != nil || center == nil {
		return center, err
	}
	r.store(ctx, *center)
	return center, nil
}

func (r *cachedServiceCenterRepository) store(ctx context.Context, centers ...entity.ServiceCenter) {
	if len(centers) == 0 {
		return
	}

	pipe := r.redisClient.Pipeline()
	for _, center := range centers {
		payload, err := json.Marshal(center)
		if err != nil {
			r.log.Warnf("Failed to encode service center %s: %+v", center.ID, err)
			continue
		}
		pipe.Set(ctx, serviceCenterCacheKeyPrefix+center.ID, payload, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.log.Warnf("Failed to cache service centers: %+v", err)
	}
}
