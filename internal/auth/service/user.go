package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/metrics"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
	"github.com/aussiebroadwan/pahiram/pkg/idx"
	"github.com/aussiebroadwan/pahiram/pkg/slogx"
)

// UserService resolves local courses and users from provider profiles.
type UserService struct {
	Store    store.Store
	Defaults DefaultsPolicy
	Metrics  *metrics.Metrics
	Now      func() time.Time
}

// FindOrCreateCourse returns the course with p's acronym, creating it on
// first sighting. Existing courses are never modified.
func (s *UserService) FindOrCreateCourse(ctx context.Context, p domain.CourseProfile) (domain.Course, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Course{}, err
	}

	existing, err := s.Store.Courses().GetCourseByAcronym(ctx, p.Acronym)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Course{}, fmt.Errorf("%w: lookup course: %w", ErrPersistence, err)
	}

	course := domain.Course{
		ID:            idx.New().String(),
		CourseAcronym: p.Acronym,
		CourseName:    p.Name,
		CreatedAt:     nowFrom(s.Now),
	}

	err = s.Store.Courses().CreateCourse(ctx, course)
	switch {
	case err == nil:
		s.Metrics.IncCoursesCreated()
		slogx.FromContext(ctx).Info("course created", "course_acronym", course.CourseAcronym)
		return course, nil
	case errors.Is(err, store.ErrAlreadyExists):
		// Lost a race with a concurrent first login, the winner's row stands.
		existing, err := s.Store.Courses().GetCourseByAcronym(ctx, p.Acronym)
		if err != nil {
			return domain.Course{}, fmt.Errorf("%w: refetch course: %w", ErrPersistence, err)
		}
		return existing, nil
	default:
		return domain.Course{}, fmt.Errorf("%w: create course: %w", ErrPersistence, err)
	}
}

// UserExists reports whether a local user with apcID exists.
func (s *UserService) UserExists(ctx context.Context, apcID string) (bool, error) {
	_, err := s.Store.Users().GetUserByAPCID(ctx, strings.TrimSpace(apcID))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("%w: lookup user: %w", ErrPersistence, err)
	}
}

// CreateUser inserts a user built from p and d. When another request
// created the same APC ID first, that row is returned with created false.
func (s *UserService) CreateUser(
	ctx context.Context,
	p domain.Profile,
	d domain.UserDefaults,
) (user domain.User, created bool, err error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.User{}, false, err
	}

	user = domain.NewUser(idx.New().String(), p, d, nowFrom(s.Now))

	err = s.Store.Users().CreateUser(ctx, user)
	switch {
	case err == nil:
		s.Metrics.IncUsersCreated()
		slogx.FromContext(ctx).Info("user created", "user_id", user.ID, "apc_id", user.APCID)
		return user, true, nil
	case errors.Is(err, store.ErrAlreadyExists):
		existing, err := s.Store.Users().GetUserByAPCID(ctx, p.APCID)
		if err != nil {
			return domain.User{}, false, fmt.Errorf("%w: refetch user: %w", ErrPersistence, err)
		}
		return existing, false, nil
	default:
		return domain.User{}, false, fmt.Errorf("%w: create user: %w", ErrPersistence, err)
	}
}

// FindOrCreateUser returns the user with p's APC ID. Returning users are
// left untouched, profile changes at the provider are not synced. New users
// get defaults from the policy for course.
func (s *UserService) FindOrCreateUser(
	ctx context.Context,
	p domain.Profile,
	course domain.Course,
) (user domain.User, created bool, err error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.User{}, false, err
	}

	existing, err := s.Store.Users().GetUserByAPCID(ctx, p.APCID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, fmt.Errorf("%w: lookup user: %w", ErrPersistence, err)
	}

	defaults, err := s.Defaults.DefaultData(ctx, course)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("%w: resolve defaults: %w", ErrPersistence, err)
	}

	return s.CreateUser(ctx, p, defaults)
}
