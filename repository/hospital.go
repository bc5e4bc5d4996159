package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/registration"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

func (r *HospitalRepository) FindByID(ctx context.Context, id uint) (*model.Hospital, error) {
	var hospital model.Hospital
	if err := r.db.WithContext(ctx).First(&hospital, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("hospital %d: %w", id, registration.ErrHospitalNotFound)
		}
		return nil, fmt.Errorf("find hospital %d: %w", id, err)
	}
	return &hospital, nil
}

// CachedHospitalLookup keeps resolved hospitals for a while. Hospitals are not
// modified by this service, so entries only expire by TTL. Misses are not cached.
type CachedHospitalLookup struct {
	next  registration.HospitalLookup
	cache *cache.Cache
}

func NewCachedHospitalLookup(next registration.HospitalLookup, ttl time.Duration) *CachedHospitalLookup {
	return &CachedHospitalLookup{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CachedHospitalLookup) FindByID(ctx context.Context, id uint) (*model.Hospital, error) {
	key := strconv.FormatUint(uint64(id), 10)
	if cached, found := c.cache.Get(key); found {
		hospital := *cached.(*model.Hospital)
		return &hospital, nil
	}

	hospital, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stored := *hospital
	c.cache.Set(key, &stored, cache.DefaultExpiration)
	return hospital, nil
}

// Forget drops a cached hospital.
func (c *CachedHospitalLookup) Forget(id uint) {
	c.cache.Delete(strconv.FormatUint(uint64(id), 10))
}
