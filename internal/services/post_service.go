package services

import (
	"context"

	"github.com/google/uuid"
	"stylishtype/internal/models/db_models"
	"stylishtype/internal/models/request_models"
	"stylishtype/internal/models/response_models"
	"stylishtype/internal/repositories"
	"stylishtype/pkg/utils"
)

type PostServiceInterface interface {
	List(ctx context.Context, q repositories.PostQuery) (response_models.PostListResponse, error)
	Detail(ctx context.Context, slug string) (response_models.PostDetailResponse, error)

	Create(ctx context.Context, req request_models.PostRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.PostRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostServiceInterface {
	return &PostService{postRepo: postRepo}
}

func postResponse(p *db_models.Post) response_models.PostResponse {
	return response_models.PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Category:   p.Category,
		Excerpt:    p.Excerpt,
		CoverImage: p.CoverImage,
		CreatedAt:  p.CreatedAt,
	}
}

func (s *PostService) List(ctx context.Context, q repositories.PostQuery) (response_models.PostListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	posts, count, err := s.postRepo.List(ctx, q)
	if err != nil {
		return response_models.PostListResponse{}, utils.ErrDatabaseError
	}

	items := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, postResponse(&posts[i]))
	}
	return response_models.PostListResponse{
		Posts:      items,
		TotalPages: repositories.TotalPages(count, repositories.BlogPageSize),
	}, nil
}

func (s *PostService) Detail(ctx context.Context, slug string) (response_models.PostDetailResponse, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return response_models.PostDetailResponse{}, utils.ErrDatabaseError
	}
	if post == nil {
		return response_models.PostDetailResponse{}, utils.ErrRecordNotFound
	}

	related, err := s.postRepo.Related(ctx, post.Category, post.ID, 3)
	if err != nil {
		return response_models.PostDetailResponse{}, utils.ErrDatabaseError
	}

	detail := response_models.PostDetailResponse{
		PostResponse: postResponse(post),
		Body:         post.Body,
		Related:      make([]response_models.PostResponse, 0, len(related)),
	}
	for i := range related {
		detail.Related = append(detail.Related, postResponse(&related[i]))
	}
	return detail, nil
}

func (s *PostService) Create(ctx context.Context, req request_models.PostRequest) (uuid.UUID, error) {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	post := &db_models.Post{
		Title:      req.Title,
		Slug:       utils.Slugify(req.Title),
		Category:   req.Category,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Published:  published,
	}
	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *PostService) Update(ctx context.Context, id uuid.UUID, req request_models.PostRequest) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrRecordNotFound
	}

	post.Title = req.Title
	post.Category = req.Category
	post.Excerpt = req.Excerpt
	post.Body = req.Body
	post.CoverImage = req.CoverImage
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
