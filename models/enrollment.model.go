package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a student to a course. The composite unique index keeps a
// student from holding two records for the same course, and both foreign
// keys cascade so a removed parent can never leave orphan rows.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Course Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
