package repository

import (
	"errors"
	"log"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type LeaveRepository interface {
	CreateLeave(leave *domain.LeaveRequest) (*domain.LeaveRequest, error)
	FindLeaveById(leaveID uint) (*domain.LeaveRequest, error)
	SaveLeave(leave *domain.LeaveRequest) error
	ListStudentLeaves(studentID uint, page, limit int) ([]domain.LeaveRequest, int64, error)
	ListPendingLeaves(page, limit int) ([]domain.LeaveRequest, int64, error)
	ListApprovedLeaves() ([]domain.LeaveRequest, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) CreateLeave(leave *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	if leave == nil {
		return nil, errors.New("nil leave request")
	}
	if err := r.db.Create(leave).Error; err != nil {
		log.Printf("create leave error: %v", err)
		return nil, err
	}
	return leave, nil
}

func (r *leaveRepository) FindLeaveById(leaveID uint) (*domain.LeaveRequest, error) {
	leave := &domain.LeaveRequest{}
	if err := r.db.First(leave, leaveID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find leave by id error: %v", err)
		}
		return nil, err
	}
	return leave, nil
}

func (r *leaveRepository) SaveLeave(leave *domain.LeaveRequest) error {
	if leave == nil {
		return errors.New("nil leave request")
	}
	if err := r.db.Save(leave).Error; err != nil {
		log.Printf("save leave error: %v", err)
		return err
	}
	return nil
}

func (r *leaveRepository) ListStudentLeaves(studentID uint, page, limit int) ([]domain.LeaveRequest, int64, error) {
	return r.list(r.db.Model(&domain.LeaveRequest{}).Where("student_id = ?", studentID), page, limit)
}

func (r *leaveRepository) ListPendingLeaves(page, limit int) ([]domain.LeaveRequest, int64, error) {
	return r.list(r.db.Model(&domain.LeaveRequest{}).Where("status = ?", domain.LeaveStatusPending), page, limit)
}

func (r *leaveRepository) list(query *gorm.DB, page, limit int) ([]domain.LeaveRequest, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("count leaves error: %v", err)
		return nil, 0, err
	}

	var leaves []domain.LeaveRequest
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&leaves).Error; err != nil {
		log.Printf("list leaves error: %v", err)
		return nil, 0, err
	}
	return leaves, total, nil
}

func (r *leaveRepository) ListApprovedLeaves() ([]domain.LeaveRequest, error) {
	var leaves []domain.LeaveRequest
	if err := r.db.Where("status = ?", domain.LeaveStatusApproved).
		Order("start_date ASC").
		Find(&leaves).Error; err != nil {
		log.Printf("list approved leaves error: %v", err)
		return nil, err
	}
	return leaves, nil
}
