package dto

type BlockUnblockRequest struct {
	IsBlocked *bool `json:"is_blocked" validate:"required"`
}

type UserListResponse struct {
	Users         interface{} `json:"users"`
	Total         int64       `json:"total"`
	TotalStudents int64       `json:"totalStudents"`
}
