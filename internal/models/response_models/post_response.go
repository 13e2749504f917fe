package response_models

import "github.com/google/uuid"

type PostResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Category   string    `json:"category,omitempty"`
	Excerpt    string    `json:"excerpt,omitempty"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  int64     `json:"createdAt"`
}

type PostListResponse struct {
	Posts      []PostResponse `json:"posts"`
	TotalPages int            `json:"totalPages"`
}

type PostDetailResponse struct {
	PostResponse
	Body    string         `json:"body"`
	Related []PostResponse `json:"related"`
}
