package dto

type AddCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"image_url" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"required,gt=0"`
}

// EditCourseRequest carries a partial update; nil fields stay untouched.
type EditCourseRequest struct {
	Title       *string `json:"title,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
}

func (r EditCourseRequest) Empty() bool {
	return r.Title == nil && r.ImageURL == nil && r.Description == nil && r.Price == nil
}

type CourseListResponse struct {
	Courses interface{} `json:"courses"`
	Total   int64       `json:"total"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
