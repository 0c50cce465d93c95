package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByAPCID(ctx context.Context, apcID string) (domain.User, error) {
	row, err := r.q.GetUserByApcID(ctx, apcID)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	return mapConstraint(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		ApcID:        u.APCID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		CourseID:     mapOptionalString(u.CourseID),
		DepartmentID: mapOptionalString(u.DepartmentID),
		UserRoleID:   u.RoleID,
		CreatedAt:    utc(u.CreatedAt),
		UpdatedAt:    utc(u.UpdatedAt),
	}))
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.q.CountUsers(ctx)
}
