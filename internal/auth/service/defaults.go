package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/pahiram/internal/auth/domain"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
)

// DefaultsPolicy decides the local attributes of a user created on first
// login.
type DefaultsPolicy interface {
	DefaultData(ctx context.Context, course domain.Course) (domain.UserDefaults, error)
}

// PolicyConfig is the YAML document describing new user defaults.
//
//	default_role: BORROWER
//	course_departments:
//	  BSIT: ITRO
type PolicyConfig struct {
	DefaultRole       string            `yaml:"default_role"`
	CourseDepartments map[string]string `yaml:"course_departments"`
}

// ParsePolicyConfig decodes and validates a policy. Unknown keys are
// rejected so typos surface at startup.
func ParsePolicyConfig(r io.Reader) (PolicyConfig, error) {
	var cfg PolicyConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return PolicyConfig{}, errors.New("defaults policy is empty")
		}
		return PolicyConfig{}, fmt.Errorf("decode defaults policy: %w", err)
	}

	cfg.DefaultRole = strings.TrimSpace(cfg.DefaultRole)
	if cfg.DefaultRole == "" {
		return PolicyConfig{}, errors.New("defaults policy: default_role is required")
	}

	return cfg, nil
}

// LookupDefaultsPolicy resolves PolicyConfig names against the lookup tables.
type LookupDefaultsPolicy struct {
	Store  store.Store
	Config PolicyConfig
}

func (p *LookupDefaultsPolicy) DefaultData(ctx context.Context, course domain.Course) (domain.UserDefaults, error) {
	role, err := p.Store.Roles().GetRoleByName(ctx, p.Config.DefaultRole)
	if err != nil {
		return domain.UserDefaults{}, fmt.Errorf("default role %q: %w", p.Config.DefaultRole, err)
	}

	var departmentID *string
	if acronym, ok := p.Config.CourseDepartments[course.CourseAcronym]; ok {
		dept, err := p.Store.Departments().GetDepartmentByAcronym(ctx, acronym)
		if err != nil {
			return domain.UserDefaults{}, fmt.Errorf("department %q for course %q: %w", acronym, course.CourseAcronym, err)
		}
		departmentID = &dept.ID
	}

	var courseID *string
	if course.ID != "" {
		id := course.ID
		courseID = &id
	}

	return domain.NewUserDefaults(role.ID, courseID, departmentID)
}

// Validate checks every name in the policy exists. Called at startup.
func (p *LookupDefaultsPolicy) Validate(ctx context.Context) error {
	if _, err := p.Store.Roles().GetRoleByName(ctx, p.Config.DefaultRole); err != nil {
		return fmt.Errorf("default role %q: %w", p.Config.DefaultRole, err)
	}
	for course, acronym := range p.Config.CourseDepartments {
		if _, err := p.Store.Departments().GetDepartmentByAcronym(ctx, acronym); err != nil {
			return fmt.Errorf("department %q for course %q: %w", acronym, course, err)
		}
	}
	return nil
}
