package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type TutorRepository interface {
	CredentialStore
	CreateTutor(tutor *domain.Tutor) (*domain.Tutor, error)
	FindTutorById(tutorID uint) (*domain.Tutor, error)
	ListTutors() ([]domain.Tutor, error)
}

type tutorRepository struct {
	db *gorm.DB
}

func NewTutorRepository(db *gorm.DB) TutorRepository {
	return &tutorRepository{db: db}
}

func (r *tutorRepository) CreateTutor(tutor *domain.Tutor) (*domain.Tutor, error) {
	if tutor == nil {
		return nil, errors.New("nil tutor")
	}
	if err := r.db.Create(tutor).Error; err != nil {
		log.Printf("create tutor error: %v", err)
		return nil, err
	}
	return tutor, nil
}

func (r *tutorRepository) CredentialByEmail(email string) (*Credential, error) {
	tutor := &domain.Tutor{}
	if err := r.db.First(tutor, "email = ?", strings.ToLower(email)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find tutor by email error: %v", err)
		}
		return nil, err
	}
	return &Credential{
		ID:           tutor.ID,
		Email:        tutor.Email,
		PasswordHash: tutor.PasswordHash,
		IsBlocked:    tutor.IsBlocked,
	}, nil
}

func (r *tutorRepository) CredentialByID(id uint) (*Credential, error) {
	tutor, err := r.FindTutorById(id)
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:           tutor.ID,
		Email:        tutor.Email,
		PasswordHash: tutor.PasswordHash,
		IsBlocked:    tutor.IsBlocked,
	}, nil
}

func (r *tutorRepository) FindTutorById(tutorID uint) (*domain.Tutor, error) {
	tutor := &domain.Tutor{}
	if err := r.db.First(tutor, tutorID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find tutor by id error: %v", err)
		}
		return nil, err
	}
	return tutor, nil
}

func (r *tutorRepository) ListTutors() ([]domain.Tutor, error) {
	var tutors []domain.Tutor
	if err := r.db.Order("created_at DESC").Find(&tutors).Error; err != nil {
		log.Printf("list tutors error: %v", err)
		return nil, err
	}
	return tutors, nil
}
