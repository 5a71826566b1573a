package services

import (
	"errors"

	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/repository"
	"gorm.io/gorm"
)

type AdminService interface {
	GetUsers(page, limit int, search string) ([]domain.Student, int64, int64, error)
	BlockUnblock(userID uint, blocked bool) (*domain.Student, error)
	GetStudents() ([]domain.Student, error)
	GetTutors() ([]domain.Tutor, error)
	GetCourses() ([]domain.Course, error)
}

type adminService struct {
	studentRepo repository.StudentRepository
	tutorRepo   repository.TutorRepository
	courseRepo  repository.CourseRepository
}

func NewAdminService(
	studentRepo repository.StudentRepository,
	tutorRepo repository.TutorRepository,
	courseRepo repository.CourseRepository,
) AdminService {
	return &adminService{
		studentRepo: studentRepo,
		tutorRepo:   tutorRepo,
		courseRepo:  courseRepo,
	}
}

func (s *adminService) GetUsers(page, limit int, search string) ([]domain.Student, int64, int64, error) {
	page, limit = normalizePage(page, limit)
	users, total, totalStudents, err := s.studentRepo.SearchStudents(page, limit, search)
	if err != nil {
		return nil, 0, 0, helper.ErrInternal("failed to fetch users", err)
	}
	return users, total, totalStudents, nil
}

func (s *adminService) BlockUnblock(userID uint, blocked bool) (*domain.Student, error) {
	student, err := s.studentRepo.FindStudentById(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("user not found")
		}
		return nil, helper.ErrInternal("failed to fetch user", err)
	}

	student.IsBlocked = blocked
	if err := s.studentRepo.SaveStudent(student); err != nil {
		return nil, helper.ErrInternal("failed to update user", err)
	}
	return student, nil
}

func (s *adminService) GetStudents() ([]domain.Student, error) {
	students, err := s.studentRepo.ListStudents()
	if err != nil {
		return nil, helper.ErrInternal("failed to fetch students", err)
	}
	return students, nil
}

func (s *adminService) GetTutors() ([]domain.Tutor, error) {
	tutors, err := s.tutorRepo.ListTutors()
	if err != nil {
		return nil, helper.ErrInternal("failed to fetch tutors", err)
	}
	return tutors, nil
}

func (s *adminService) GetCourses() ([]domain.Course, error) {
	courses, err := s.courseRepo.ListCourses()
	if err != nil {
		return nil, helper.ErrInternal("failed to fetch courses", err)
	}
	return courses, nil
}
