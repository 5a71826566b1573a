package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type StudentRepository interface {
	CredentialStore
	CreateStudent(student *domain.Student) (*domain.Student, error)
	FindStudentById(studentID uint) (*domain.Student, error)
	SaveStudent(student *domain.Student) error
	ListStudents() ([]domain.Student, error)
	SearchStudents(page, limit int, search string) ([]domain.Student, int64, int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateStudent(student *domain.Student) (*domain.Student, error) {
	if student == nil {
		return nil, errors.New("nil student")
	}
	if err := r.db.Create(student).Error; err != nil {
		log.Printf("create student error: %v", err)
		return nil, err
	}
	return student, nil
}

func (r *studentRepository) CredentialByEmail(email string) (*Credential, error) {
	student := &domain.Student{}
	if err := r.db.First(student, "email = ?", strings.ToLower(email)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find student by email error: %v", err)
		}
		return nil, err
	}
	return &Credential{
		ID:           student.ID,
		Email:        student.Email,
		PasswordHash: student.PasswordHash,
		IsBlocked:    student.IsBlocked,
	}, nil
}

func (r *studentRepository) CredentialByID(id uint) (*Credential, error) {
	student, err := r.FindStudentById(id)
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:           student.ID,
		Email:        student.Email,
		PasswordHash: student.PasswordHash,
		IsBlocked:    student.IsBlocked,
	}, nil
}

func (r *studentRepository) FindStudentById(studentID uint) (*domain.Student, error) {
	student := &domain.Student{}
	if err := r.db.First(student, studentID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find student by id error: %v", err)
		}
		return nil, err
	}
	return student, nil
}

func (r *studentRepository) SaveStudent(student *domain.Student) error {
	if student == nil {
		return errors.New("nil student")
	}
	if err := r.db.Save(student).Error; err != nil {
		log.Printf("save student error: %v", err)
		return err
	}
	return nil
}

func (r *studentRepository) ListStudents() ([]domain.Student, error) {
	var students []domain.Student
	if err := r.db.Order("created_at DESC").Find(&students).Error; err != nil {
		log.Printf("list students error: %v", err)
		return nil, err
	}
	return students, nil
}

// SearchStudents pages through students matching name/email, and also
// returns the unfiltered student count for the admin dashboard.
func (r *studentRepository) SearchStudents(page, limit int, search string) ([]domain.Student, int64, int64, error) {
	query := r.db.Model(&domain.Student{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("count students error: %v", err)
		return nil, 0, 0, err
	}

	var students []domain.Student
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&students).Error; err != nil {
		log.Printf("search students error: %v", err)
		return nil, 0, 0, err
	}

	var totalStudents int64
	if err := r.db.Model(&domain.Student{}).Count(&totalStudents).Error; err != nil {
		log.Printf("count all students error: %v", err)
		return nil, 0, 0, err
	}

	return students, total, totalStudents, nil
}
