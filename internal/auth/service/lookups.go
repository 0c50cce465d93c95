package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// LookupService turns role and department ids into their display codes.
// Values are read through the cache, concurrent misses for one key share a
// single query.
type LookupService struct {
	Store store.Store
	Cache cache.Client
	TTL   time.Duration

	group singleflight.Group
}

// RoleName returns the role name for roleID, e.g. BORROWER.
func (s *LookupService) RoleName(ctx context.Context, roleID string) (string, error) {
	return s.cached(ctx, "role:"+roleID, func(ctx context.Context) (string, error) {
		role, err := s.Store.Roles().GetRoleByID(ctx, roleID)
		if err != nil {
			return "", err
		}
		return role.Name, nil
	})
}

// DepartmentCode returns the acronym for departmentID. A nil id yields nil.
func (s *LookupService) DepartmentCode(ctx context.Context, departmentID *string) (*string, error) {
	if departmentID == nil {
		return nil, nil
	}

	code, err := s.cached(ctx, "department:"+*departmentID, func(ctx context.Context) (string, error) {
		dept, err := s.Store.Departments().GetDepartmentByID(ctx, *departmentID)
		if err != nil {
			return "", err
		}
		return dept.Acronym, nil
	})
	if err != nil {
		return nil, err
	}
	return &code, nil
}

// cached reads key through the cache. load runs on a context that ignores
// the caller's cancellation, its result is shared with every waiter.
func (s *LookupService) cached(ctx context.Context, key string, load func(context.Context) (string, error)) (string, error) {
	l := slogx.FromContext(ctx)

	if s.Cache != nil {
		v, err := s.Cache.Get(ctx, key)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, cache.ErrNotFound) {
			l.Warn("lookup cache read failed", "key", key, "error", err)
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return load(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	value := v.(string)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, value, s.TTL); err != nil {
			l.Warn("lookup cache write failed", "key", key, "error", err)
		}
	}
	return value, nil
}
