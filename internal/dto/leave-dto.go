package dto

type ApplyLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

type LeaveListResponse struct {
	Leaves interface{} `json:"leaves"`
	Total  int64       `json:"total"`
}
