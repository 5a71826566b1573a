package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/StudyHive/course_service/internal/domain"
	"github.com/StudyHive/course_service/internal/dto"
	"github.com/StudyHive/course_service/internal/helper"
	"github.com/StudyHive/course_service/internal/interfaces"
	"github.com/StudyHive/course_service/internal/repository"
	"gorm.io/gorm"
)

const leaveDateLayout = "2006-01-02"

type LeaveService interface {
	ApplyLeave(studentID uint, input dto.ApplyLeaveRequest) (*domain.LeaveRequest, error)
	GetUserLeaves(studentID uint, page, limit int) ([]domain.LeaveRequest, int64, error)
	GetPendingLeaves(page, limit int) ([]domain.LeaveRequest, int64, error)
	UpdateLeaveStatus(leaveID uint, input dto.UpdateLeaveStatusRequest) (*domain.LeaveRequest, error)
	GetCalendarLeaves() ([]domain.LeaveRequest, error)
}

type leaveService struct {
	repo     repository.LeaveRepository
	producer interfaces.ProducerHandler
}

func NewLeaveService(repo repository.LeaveRepository, producer interfaces.ProducerHandler) LeaveService {
	return &leaveService{repo: repo, producer: producer}
}

func (s *leaveService) ApplyLeave(studentID uint, input dto.ApplyLeaveRequest) (*domain.LeaveRequest, error) {
	if err := dto.Validate(input); err != nil {
		return nil, helper.ErrValidation("start date, end date and reason are required (YYYY-MM-DD)")
	}

	start, err := time.Parse(leaveDateLayout, input.StartDate)
	if err != nil {
		return nil, helper.ErrValidation("invalid start date")
	}
	end, err := time.Parse(leaveDateLayout, input.EndDate)
	if err != nil {
		return nil, helper.ErrValidation("invalid end date")
	}

	// a single-day leave (start == end) is fine
	if start.After(end) {
		return nil, helper.ErrValidation("start date must be before end date")
	}

	leave := &domain.LeaveRequest{
		StudentID: studentID,
		StartDate: start,
		EndDate:   end,
		Reason:    strings.TrimSpace(input.Reason),
		Status:    domain.LeaveStatusPending,
	}

	created, err := s.repo.CreateLeave(leave)
	if err != nil {
		return nil, helper.ErrInternal("failed to apply leave", err)
	}
	return created, nil
}

func (s *leaveService) GetUserLeaves(studentID uint, page, limit int) ([]domain.LeaveRequest, int64, error) {
	page, limit = normalizePage(page, limit)
	leaves, total, err := s.repo.ListStudentLeaves(studentID, page, limit)
	if err != nil {
		return nil, 0, helper.ErrInternal("failed to fetch leaves", err)
	}
	return leaves, total, nil
}

func (s *leaveService) GetPendingLeaves(page, limit int) ([]domain.LeaveRequest, int64, error) {
	page, limit = normalizePage(page, limit)
	leaves, total, err := s.repo.ListPendingLeaves(page, limit)
	if err != nil {
		return nil, 0, helper.ErrInternal("failed to fetch pending leaves", err)
	}
	return leaves, total, nil
}

func (s *leaveService) UpdateLeaveStatus(leaveID uint, input dto.UpdateLeaveStatusRequest) (*domain.LeaveRequest, error) {
	status := strings.TrimSpace(input.Status)
	if status != domain.LeaveStatusApproved && status != domain.LeaveStatusRejected {
		return nil, helper.ErrValidation(fmt.Sprintf("status must be %s or %s", domain.LeaveStatusApproved, domain.LeaveStatusRejected))
	}

	leave, err := s.repo.FindLeaveById(leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrNotFound("leave request not found")
		}
		return nil, helper.ErrInternal("failed to fetch leave request", err)
	}

	// Approved/Rejected are terminal
	if leave.Status != domain.LeaveStatusPending {
		return nil, helper.ErrValidation("leave request has already been decided")
	}

	leave.Status = status
	if status == domain.LeaveStatusRejected && strings.TrimSpace(input.RejectionReason) != "" {
		reason := strings.TrimSpace(input.RejectionReason)
		leave.RejectionReason = &reason
	} else {
		leave.RejectionReason = nil
	}

	if err := s.repo.SaveLeave(leave); err != nil {
		return nil, helper.ErrInternal("failed to update leave status", err)
	}

	s.publishLeaveEvent(leave)
	return leave, nil
}

func (s *leaveService) publishLeaveEvent(leave *domain.LeaveRequest) {
	if s.producer == nil {
		return
	}
	event := dto.LeaveStatusUpdatedEvent{
		Event:     dto.EventLeaveStatusUpdated,
		LeaveID:   leave.ID,
		StudentID: leave.StudentID,
		Status:    leave.Status,
	}
	if leave.RejectionReason != nil {
		event.RejectionReason = *leave.RejectionReason
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.producer.PublishMessage([]byte(fmt.Sprintf("leave-%d", leave.ID)), payload); err != nil {
		log.Printf("publish leave event error: %v", err)
	}
}

func (s *leaveService) GetCalendarLeaves() ([]domain.LeaveRequest, error) {
	leaves, err := s.repo.ListApprovedLeaves()
	if err != nil {
		return nil, helper.ErrInternal("failed to fetch calendar leaves", err)
	}
	return leaves, nil
}
