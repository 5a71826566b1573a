package repository

import (
	"errors"
	"log"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type CourseRepository interface {
	CreateCourse(course *domain.Course) (*domain.Course, error)
	FindCourseById(courseID uint) (*domain.Course, error)
	ListAdminCourses(adminID uint, page, limit int, search string) ([]domain.Course, int64, error)
	ListPublicCourses(page, limit int, search string) ([]domain.Course, int64, error)
	ListCourses() ([]domain.Course, error)
	UpdateCourse(courseID uint, fields map[string]interface{}) (*domain.Course, error)
	DeleteCourse(courseID uint) (bool, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(course *domain.Course) (*domain.Course, error) {
	if course == nil {
		return nil, errors.New("nil course")
	}
	if err := r.db.Create(course).Error; err != nil {
		log.Printf("create course error: %v", err)
		return nil, err
	}
	return course, nil
}

func (r *courseRepository) FindCourseById(courseID uint) (*domain.Course, error) {
	course := &domain.Course{}
	if err := r.db.First(course, courseID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find course by id error: %v", err)
		}
		return nil, err
	}
	return course, nil
}

func (r *courseRepository) ListAdminCourses(adminID uint, page, limit int, search string) ([]domain.Course, int64, error) {
	return r.list(r.db.Model(&domain.Course{}).Where("admin_id = ?", adminID), page, limit, search)
}

func (r *courseRepository) ListPublicCourses(page, limit int, search string) ([]domain.Course, int64, error) {
	return r.list(r.db.Model(&domain.Course{}), page, limit, search)
}

func (r *courseRepository) list(query *gorm.DB, page, limit int, search string) ([]domain.Course, int64, error) {
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("count courses error: %v", err)
		return nil, 0, err
	}

	var courses []domain.Course
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		log.Printf("list courses error: %v", err)
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *courseRepository) ListCourses() ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		log.Printf("list all courses error: %v", err)
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) UpdateCourse(courseID uint, fields map[string]interface{}) (*domain.Course, error) {
	course, err := r.FindCourseById(courseID)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(course).Updates(fields).Error; err != nil {
		log.Printf("update course error: %v", err)
		return nil, err
	}
	return course, nil
}

func (r *courseRepository) DeleteCourse(courseID uint) (bool, error) {
	res := r.db.Delete(&domain.Course{}, courseID)
	if res.Error != nil {
		log.Printf("delete course error: %v", res.Error)
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
