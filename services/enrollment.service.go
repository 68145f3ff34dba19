package services

import (
	"database/sql"
	"errors"
	"log"

	"enrollapp/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// maxEnrollAttempts bounds the retry loop around the enroll transaction.
// Only store-level serialization conflicts are retried; business-rule
// failures are final on the first attempt.
const maxEnrollAttempts = 3

// EnrollmentService enforces the enrollment invariants: per-course capacity,
// one record per (student, course) pair, and active-course gating.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// CourseEnrollments is the roster view for a single course.
type CourseEnrollments struct {
	CourseID      uuid.UUID           `json:"course_id"`
	TotalStudents int                 `json:"total_students"`
	Enrollments   []models.Enrollment `json:"enrollments"`
}

// Enroll registers a student in a course. The load/count/duplicate-check/
// insert sequence runs as one serializable transaction so two concurrent
// enrollments can never both pass the capacity check; on a serialization
// conflict the whole sequence is retried.
func (s *EnrollmentService) Enroll(studentID, courseID uuid.UUID) (*models.Enrollment, error) {
	var lastErr error

	for attempt := 0; attempt < maxEnrollAttempts; attempt++ {
		enrollment := models.Enrollment{
			UserID:   studentID,
			CourseID: courseID,
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			var course models.Course
			if err := tx.First(&course, "id = ?", courseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NotFound("Course not found or inactive!")
				}
				return err
			}
			if !course.IsActive {
				return NotFound("Course not found or inactive!")
			}

			var enrolledCount int64
			if err := tx.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&enrolledCount).Error; err != nil {
				return err
			}
			if enrolledCount >= int64(course.Capacity) {
				return CapacityExceeded("Course capacity full!")
			}

			var existing models.Enrollment
			err := tx.Where("user_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error
			if err == nil {
				return Conflict("You are already enrolled in this course!")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			return tx.Create(&enrollment).Error
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})

		if err == nil {
			return &enrollment, nil
		}

		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return nil, svcErr
		}
		// The unique index on (user_id, course_id) backs the duplicate
		// check; a violation means the student got enrolled concurrently.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("You are already enrolled in this course!")
		}
		if !isRetryableTxError(err) {
			return nil, err
		}
		lastErr = err
	}

	log.Printf("Enroll: giving up after %d attempts: %v", maxEnrollAttempts, lastErr)
	return nil, Conflict("Could not complete enrollment, please try again!")
}

// isRetryableTxError reports whether the transaction failed on a transient
// isolation conflict (serialization failure or deadlock).
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// Deregister removes the caller's own enrollment in a course.
func (s *EnrollmentService) Deregister(studentID, courseID uuid.UUID) error {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error; err != nil {
		return NotFound("Enrollment not found!")
	}

	return s.db.Delete(&enrollment).Error
}

// RemoveStudent is the admin-initiated removal, keyed by explicit student id.
func (s *EnrollmentService) RemoveStudent(studentID, courseID uuid.UUID) error {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", studentID, courseID).First(&enrollment).Error; err != nil {
		return NotFound("Enrollment not found!")
	}

	return s.db.Delete(&enrollment).Error
}

func (s *EnrollmentService) ListAll() ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListForCourse returns the roster for a course. A course with zero
// enrollments yields an empty roster; only a missing course is a NotFound.
func (s *EnrollmentService) ListForCourse(courseID uuid.UUID) (*CourseEnrollments, error) {
	if err := s.db.First(&models.Course{}, "id = ?", courseID).Error; err != nil {
		return nil, NotFound("Course not found!")
	}

	var enrollments []models.Enrollment
	if err := s.db.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	return &CourseEnrollments{
		CourseID:      courseID,
		TotalStudents: len(enrollments),
		Enrollments:   enrollments,
	}, nil
}
