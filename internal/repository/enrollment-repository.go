package repository

import (
	"errors"
	"log"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	// Enroll inserts the record and bumps the course buy count in one
	// transaction. A replayed payment id is a no-op and reports false.
	Enroll(enrollment *domain.Enrollment) (bool, error)
	FindByPaymentID(paymentID string) (*domain.Enrollment, error)
	ListStudentEnrollments(studentID uint) ([]domain.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Enroll(enrollment *domain.Enrollment) (bool, error) {
	if enrollment == nil {
		return false, errors.New("nil enrollment")
	}

	enrolled := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing domain.Enrollment
		err := tx.Where("payment_id = ?", enrollment.PaymentID).First(&existing).Error
		if err == nil {
			// already recorded; keep the counter as-is
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Course{}).
			Where("id = ?", enrollment.CourseID).
			UpdateColumn("buy_count", gorm.Expr("buy_count + 1")).Error; err != nil {
			return err
		}
		enrolled = true
		return nil
	})
	if err != nil {
		log.Printf("enroll transaction error: %v", err)
		return false, err
	}
	return enrolled, nil
}

func (r *enrollmentRepository) FindByPaymentID(paymentID string) (*domain.Enrollment, error) {
	enrollment := &domain.Enrollment{}
	if err := r.db.Where("payment_id = ?", paymentID).First(enrollment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find enrollment by payment id error: %v", err)
		}
		return nil, err
	}
	return enrollment, nil
}

func (r *enrollmentRepository) ListStudentEnrollments(studentID uint) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	if err := r.db.Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error; err != nil {
		log.Printf("list enrollments error: %v", err)
		return nil, err
	}
	return enrollments, nil
}
