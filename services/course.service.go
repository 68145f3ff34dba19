package services

import (
	"errors"

	"enrollapp/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseService owns course records: CRUD, the course-code uniqueness rule
// and the activation toggle.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// CourseUpdateInput carries PATCH semantics: only non-nil fields are applied.
type CourseUpdateInput struct {
	Title    *string
	Code     *string
	Capacity *int
}

func (s *CourseService) Create(title, code string, capacity int) (*models.Course, error) {
	// Check for duplicate course code
	if err := s.db.Where("code = ?", code).First(&models.Course{}).Error; err == nil {
		return nil, Conflict("Course with this code already exists!")
	}

	course := models.Course{
		Title:    title,
		Code:     code,
		Capacity: capacity,
		IsActive: true,
	}

	if err := s.db.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Conflict("Course with this code already exists!")
		}
		return nil, err
	}

	return &course, nil
}

func (s *CourseService) Update(id uuid.UUID, input CourseUpdateInput) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, NotFound("Course not found!")
	}

	// A changed code must stay unique
	if input.Code != nil && *input.Code != course.Code {
		if err := s.db.Where("code = ?", *input.Code).First(&models.Course{}).Error; err == nil {
			return nil, Conflict("Course with this code already exists!")
		}
		course.Code = *input.Code
	}
	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Capacity != nil {
		course.Capacity = *input.Capacity
	}

	if err := s.db.Save(&course).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

// Deactivate closes a course to new enrollments. Already-inactive courses
// return success with an informational message.
func (s *CourseService) Deactivate(id uuid.UUID) (string, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return "", NotFound("Course not found!")
	}

	if !course.IsActive {
		return "Course is already inactive.", nil
	}

	course.IsActive = false
	if err := s.db.Save(&course).Error; err != nil {
		return "", err
	}

	return "Course deactivated successfully.", nil
}

func (s *CourseService) Activate(id uuid.UUID) (string, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return "", NotFound("Course not found!")
	}

	if course.IsActive {
		return "Course is already active.", nil
	}

	course.IsActive = true
	if err := s.db.Save(&course).Error; err != nil {
		return "", err
	}

	return "Course activated successfully.", nil
}

// Delete removes a course and every enrollment referencing it in one
// transaction.
func (s *CourseService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, "id = ?", id).Error; err != nil {
			return NotFound("Course not found!")
		}

		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&course).Error
	})
}

func (s *CourseService) List() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetByID(id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, NotFound("Course not found!")
	}
	return &course, nil
}
