package dto

import "time"

const (
	EventEnrollmentCompleted = "enrollment.completed"
	EventLeaveStatusUpdated  = "leave.status_updated"
)

type EnrollmentCompletedEvent struct {
	Event      string    `json:"event"`
	StudentID  uint      `json:"student_id"`
	CourseID   uint      `json:"course_id"`
	PaymentID  string    `json:"payment_id"`
	Amount     int64     `json:"amount"`
	Currency   string    `json:"currency"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type LeaveStatusUpdatedEvent struct {
	Event           string `json:"event"`
	LeaveID         uint   `json:"leave_id"`
	StudentID       uint   `json:"student_id"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
