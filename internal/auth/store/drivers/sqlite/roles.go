package sqlite

import (
	"context"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store/drivers/sqlite/gen"
)

type rolesRepo struct {
	q *gen.Queries
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row, err := r.q.GetRoleByName(ctx, name)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, mapRole(row))
	}
	return roles, nil
}

type departmentsRepo struct {
	q *gen.Queries
}

func (r *departmentsRepo) GetDepartmentByID(ctx context.Context, id string) (domain.Department, error) {
	row, err := r.q.GetDepartmentByID(ctx, id)
	if err != nil {
		return domain.Department{}, mapNotFound(err)
	}
	return mapDepartment(row), nil
}

func (r *departmentsRepo) GetDepartmentByAcronym(ctx context.Context, acronym string) (domain.Department, error) {
	row, err := r.q.GetDepartmentByAcronym(ctx, acronym)
	if err != nil {
		return domain.Department{}, mapNotFound(err)
	}
	return mapDepartment(row), nil
}
