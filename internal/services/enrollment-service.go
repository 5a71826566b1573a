package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/StudyHive/course_service/internal/clients/razorpay"
	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/interfaces"
	"github.com/StudyHive/course_service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultCurrency   = "INR"
	maxReceiptLength  = 40
	receiptCourseTrim = 10
)

// PaymentGateway is what the enrollment flow needs from Razorpay;
// *razorpay.Client satisfies it, tests plug in a fake.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type EnrollmentService interface {
	CreateOrder(ctx context.Context, courseID uint, claimedAmount int64) (*dto.CreateOrderResponse, error)
	EnrollCourse(studentID, courseID uint, proof dto.EnrollRequest) error
	GetUserEnrollments(studentID uint) ([]domain.Enrollment, error)
}

type enrollmentService struct {
	enrollRepo  repository.EnrollmentRepository
	courseRepo  repository.CourseRepository
	studentRepo repository.StudentRepository
	gateway     PaymentGateway
	producer    interfaces.ProducerHandler
}

func NewEnrollmentService(
	enrollRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
	studentRepo repository.StudentRepository,
	gateway PaymentGateway,
	producer interfaces.ProducerHandler,
) EnrollmentService {
	return &enrollmentService{
		enrollRepo:  enrollRepo,
		courseRepo:  courseRepo,
		studentRepo: studentRepo,
		gateway:     gateway,
		producer:    producer,
	}
}

func (s *enrollmentService) CreateOrder(ctx context.Context, courseID uint, claimedAmount int64) (*dto.CreateOrderResponse, error) {
	course, err := s.courseRepo.FindCourseById(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("course not found")
		}
		return nil, helper.ErrInternal("failed to fetch course", err)
	}

	// the client claims what it is about to pay, in paise; it must
	// match the catalog price exactly before any gateway order exists
	if claimedAmount != course.Price*100 {
		return nil, helper.ErrIntegrity("amount does not match course price")
	}

	order, err := s.gateway.CreateOrder(ctx, course.Price*100, defaultCurrency, buildReceipt(course.ID))
	if err != nil {
		return nil, helper.ErrInternal("failed to create payment order", err)
	}

	return &dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

// buildReceipt keeps the gateway's 40-char receipt limit: truncated
// course id plus the trailing digits of the current timestamp.
func buildReceipt(courseID uint) string {
	id := fmt.Sprintf("%d", courseID)
	if len(id) > receiptCourseTrim {
		id = id[:receiptCourseTrim]
	}
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	receipt := fmt.Sprintf("r_%s_%s", id, ts)
	if len(receipt) > maxReceiptLength {
		receipt = receipt[:maxReceiptLength]
	}
	return receipt
}

func (s *enrollmentService) EnrollCourse(studentID, courseID uint, proof dto.EnrollRequest) error {
	if err := dto.Validate(proof); err != nil {
		return helper.ErrValidation("payment_method must be razorpay or wallet")
	}

	student, err := s.studentRepo.FindStudentById(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("student not found")
		}
		return helper.ErrInternal("failed to fetch student", err)
	}

	course, err := s.courseRepo.FindCourseById(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrNotFound("course not found")
		}
		return helper.ErrInternal("failed to fetch course", err)
	}

	enrollment := &domain.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		Amount:     course.Price,
		Currency:   defaultCurrency,
		EnrolledAt: time.Now(),
	}

	switch proof.PaymentMethod {
	case dto.PaymentMethodRazorpay:
		if proof.RazorpayPaymentID == "" || proof.RazorpayOrderID == "" || proof.RazorpaySignature == "" {
			return helper.ErrValidation("razorpay payment id, order id and signature are required")
		}
		if !s.gateway.VerifySignature(proof.RazorpayOrderID, proof.RazorpayPaymentID, proof.RazorpaySignature) {
			return helper.ErrIntegrity("invalid payment signature")
		}
		enrollment.PaymentID = proof.RazorpayPaymentID
		enrollment.OrderID = proof.RazorpayOrderID
		enrollment.Signature = proof.RazorpaySignature
		enrollment.WalletTransactionID = proof.WalletTransactionID
	case dto.PaymentMethodWallet:
		if proof.WalletTransactionID == "" {
			return helper.ErrValidation("wallet transaction id is required")
		}
		enrollment.PaymentID = proof.WalletTransactionID
		enrollment.OrderID = "wallet_order_" + uuid.NewString()
		enrollment.WalletTransactionID = proof.WalletTransactionID
	default:
		return helper.ErrValidation("unsupported payment method")
	}

	enrolled, err := s.enrollRepo.Enroll(enrollment)
	if err != nil {
		return helper.ErrInternal("failed to enroll course", err)
	}
	if !enrolled {
		// same payment replayed; treat as success without side effects
		log.Printf("enrollment replay ignored: payment_id=%s student=%d", enrollment.PaymentID, studentID)
		return nil
	}

	s.publishEnrollmentEvent(enrollment)
	return nil
}

func (s *enrollmentService) publishEnrollmentEvent(e *domain.Enrollment) {
	if s.producer == nil {
		return
	}
	event := dto.EnrollmentCompletedEvent{
		Event:      dto.EventEnrollmentCompleted,
		StudentID:  e.StudentID,
		CourseID:   e.CourseID,
		PaymentID:  e.PaymentID,
		Amount:     e.Amount,
		Currency:   e.Currency,
		EnrolledAt: e.EnrolledAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(e.PaymentID), payload); err != nil {
		log.Printf("publish enrollment event error: %v", err)
	}
}

func (s *enrollmentService) GetUserEnrollments(studentID uint) ([]domain.Enrollment, error) {
	if _, err := s.studentRepo.FindStudentById(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("student not found")
		}
		return nil, helper.ErrInternal("failed to fetch student", err)
	}

	enrollments, err := s.enrollRepo.ListStudentEnrollments(studentID)
	if err != nil {
		return nil, helper.ErrInternal("failed to fetch enrollments", err)
	}
	return enrollments, nil
}
