package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite/gen"
)

type coursesRepo struct {
	q *gen.Queries
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id string) (domain.Course, error) {
	row, err := r.q.GetCourseByID(ctx, id)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return mapCourse(row), nil
}

func (r *coursesRepo) GetCourseByAcronym(ctx context.Context, acronym string) (domain.Course, error) {
	row, err := r.q.GetCourseByAcronym(ctx, acronym)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return mapCourse(row), nil
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) error {
	return mapConstraint(r.q.CreateCourse(ctx, gen.CreateCourseParams{
		ID:            c.ID,
		CourseAcronym: c.CourseAcronym,
		Course:        c.CourseName,
		CreatedAt:     utc(c.CreatedAt),
	}))
}
