package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrIncompleteCourse is returned when a course payload has no acronym.
var ErrIncompleteCourse = errors.New("domain: course missing acronym")

// Course is the academic program a user is enrolled in. CourseAcronym is
// unique.
type Course struct {
	ID            string
	CourseAcronym string
	CourseName    string
	CreatedAt     time.Time
}

// CourseProfile is the course payload the provider returns.
type CourseProfile struct {
	Acronym string
	Name    string
}

// Normalize trims the acronym, the unique key of a course.
func (c CourseProfile) Normalize() CourseProfile {
	c.Acronym = strings.TrimSpace(c.Acronym)
	return c
}

func (c CourseProfile) Validate() error {
	if strings.TrimSpace(c.Acronym) == "" {
		return ErrIncompleteCourse
	}
	return nil
}
