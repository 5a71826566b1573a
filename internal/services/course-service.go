package services

import (
	"errors"
	"strings"

	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/repository"
	"gorm.io/gorm"
)

type CourseService interface {
	AddCourse(adminID uint, input dto.AddCourseRequest) (*domain.Course, error)
	ListAdminCourses(adminID uint, page, limit int, search string) ([]domain.Course, int64, error)
	ListPublicCourses(page, limit int, search string) ([]domain.Course, int64, error)
	GetCourse(courseID uint) (*domain.Course, error)
	EditCourse(courseID uint, input dto.EditCourseRequest) (*domain.Course, error)
	DeleteCourse(courseID uint) (bool, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) AddCourse(adminID uint, input dto.AddCourseRequest) (*domain.Course, error) {
	if err := dto.Validate(input); err != nil {
		return nil, helper.ErrValidation("title, image, description and a positive price are required")
	}
	if adminID == 0 {
		return nil, helper.ErrValidation("missing admin id")
	}

	course := &domain.Course{
		Title:       strings.TrimSpace(input.Title),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		AdminID:     adminID,
		BuyCount:    0,
	}

	created, err := s.repo.CreateCourse(course)
	if err != nil {
		return nil, helper.ErrInternal("failed to add course", err)
	}
	return created, nil
}

func (s *courseService) ListAdminCourses(adminID uint, page, limit int, search string) ([]domain.Course, int64, error) {
	page, limit = normalizePage(page, limit)
	courses, total, err := s.repo.ListAdminCourses(adminID, page, limit, search)
	if err != nil {
		return nil, 0, helper.ErrInternal("failed to list courses", err)
	}
	return courses, total, nil
}

func (s *courseService) ListPublicCourses(page, limit int, search string) ([]domain.Course, int64, error) {
	page, limit = normalizePage(page, limit)
	courses, total, err := s.repo.ListPublicCourses(page, limit, search)
	if err != nil {
		return nil, 0, helper.ErrInternal("failed to list courses", err)
	}
	return courses, total, nil
}

func (s *courseService) GetCourse(courseID uint) (*domain.Course, error) {
	course, err := s.repo.FindCourseById(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("course not found")
		}
		return nil, helper.ErrInternal("failed to fetch course", err)
	}
	return course, nil
}

func (s *courseService) EditCourse(courseID uint, input dto.EditCourseRequest) (*domain.Course, error) {
	if input.Empty() {
		return nil, helper.ErrValidation("no fields to update")
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, helper.ErrValidation("title cannot be empty")
		}
		fields["title"] = strings.TrimSpace(*input.Title)
	}
	if input.ImageURL != nil {
		fields["image_url"] = strings.TrimSpace(*input.ImageURL)
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, helper.ErrValidation("price must be positive")
		}
		fields["price"] = *input.Price
	}

	course, err := s.repo.UpdateCourse(courseID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("course not found")
		}
		return nil, helper.ErrInternal("failed to edit course", err)
	}
	return course, nil
}

func (s *courseService) DeleteCourse(courseID uint) (bool, error) {
	removed, err := s.repo.DeleteCourse(courseID)
	if err != nil {
		return false, helper.ErrInternal("failed to delete course", err)
	}
	return removed, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
