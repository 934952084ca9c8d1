package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/konaseema/zpportal/internal/app/models"
	"github.com/konaseema/zpportal/internal/app/models/dto"
	"github.com/konaseema/zpportal/internal/app/repositories"
	"github.com/konaseema/zpportal/internal/pkg/apperrors"
)

// Default categories applied when a publisher leaves the field blank.
const (
	DefaultForumCategory    = "general"
	DefaultBulletinCategory = "announcement"
)

// ContentService handles forum posts, bulletins, news and galleries.
type ContentService interface {
	CreateForumPost(ctx context.Context, userID string, req *dto.ForumPostRequest) (*models.ForumPost, error)
	ListForumPosts(ctx context.Context, filter models.ContentFilter) ([]*models.ForumPost, error)
	CreateBulletin(ctx context.Context, userID string, req *dto.BulletinRequest) (*models.Bulletin, error)
	ListBulletins(ctx context.Context, filter models.ContentFilter) ([]*models.Bulletin, error)
	CreateNews(ctx context.Context, userID string, req *dto.NewsRequest) (*models.News, error)
	ListNews(ctx context.Context, schoolID string) ([]*models.News, error)
	CreateGallery(ctx context.Context, userID string, req *dto.GalleryRequest) (*models.Gallery, error)
	ListGalleries(ctx context.Context, schoolID string) ([]*models.Gallery, error)
}

type contentServiceImpl struct {
	contentRepo repositories.IContentRepository
}

// NewContentService creates a new ContentService
func NewContentService(contentRepo repositories.IContentRepository) ContentService {
	return &contentServiceImpl{contentRepo: contentRepo}
}

func categoryOr(category, fallback string) string {
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
		return c
	}
	return fallback
}

// wrapCreateError keeps the not-found cause visible as a validation problem.
func wrapCreateError(kind string, err error) error {
	if errors.Is(err, apperrors.ErrSchoolNotFound) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, err)
	}
	return fmt.Errorf("error creating %s: %w", kind, err)
}

func (s *contentServiceImpl) CreateForumPost(ctx context.Context, userID string, req *dto.ForumPostRequest) (*models.ForumPost, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: post is nil", apperrors.ErrValidationFailed)
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	content, err := requireText("content", req.Content)
	if err != nil {
		return nil, err
	}

	post := &models.ForumPost{
		ID:       newID(),
		Title:    title,
		Content:  content,
		AuthorID: userID,
		SchoolID: optionalText(req.SchoolID),
		Category: categoryOr(req.Category, DefaultForumCategory),
	}
	if err := s.contentRepo.CreateForumPost(ctx, post); err != nil {
		return nil, wrapCreateError("forum post", err)
	}
	return post, nil
}

func (s *contentServiceImpl) ListForumPosts(ctx context.Context, filter models.ContentFilter) ([]*models.ForumPost, error) {
	posts, err := s.contentRepo.ListForumPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving forum posts: %w", err)
	}
	return posts, nil
}

func (s *contentServiceImpl) CreateBulletin(ctx context.Context, userID string, req *dto.BulletinRequest) (*models.Bulletin, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: bulletin is nil", apperrors.ErrValidationFailed)
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	content, err := requireText("content", req.Content)
	if err != nil {
		return nil, err
	}

	bulletin := &models.Bulletin{
		ID:        newID(),
		Title:     title,
		Content:   content,
		SchoolID:  optionalText(req.SchoolID),
		Category:  categoryOr(req.Category, DefaultBulletinCategory),
		CreatedBy: userID,
	}
	if err := s.contentRepo.CreateBulletin(ctx, bulletin); err != nil {
		return nil, wrapCreateError("bulletin", err)
	}
	return bulletin, nil
}

func (s *contentServiceImpl) ListBulletins(ctx context.Context, filter models.ContentFilter) ([]*models.Bulletin, error) {
	bulletins, err := s.contentRepo.ListBulletins(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving bulletins: %w", err)
	}
	return bulletins, nil
}

func (s *contentServiceImpl) CreateNews(ctx context.Context, userID string, req *dto.NewsRequest) (*models.News, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: news is nil", apperrors.ErrValidationFailed)
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	content, err := requireText("content", req.Content)
	if err != nil {
		return nil, err
	}

	news := &models.News{
		ID:        newID(),
		Title:     title,
		Content:   content,
		SchoolID:  optionalText(req.SchoolID),
		ImageURL:  optionalText(req.ImageURL),
		CreatedBy: userID,
	}
	if err := s.contentRepo.CreateNews(ctx, news); err != nil {
		return nil, wrapCreateError("news", err)
	}
	return news, nil
}

func (s *contentServiceImpl) ListNews(ctx context.Context, schoolID string) ([]*models.News, error) {
	news, err := s.contentRepo.ListNews(ctx, models.ContentFilter{SchoolID: schoolID})
	if err != nil {
		return nil, fmt.Errorf("error retrieving news: %w", err)
	}
	return news, nil
}

func (s *contentServiceImpl) CreateGallery(ctx context.Context, userID string, req *dto.GalleryRequest) (*models.Gallery, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: gallery is nil", apperrors.ErrValidationFailed)
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	schoolID, err := requireText("school_id", req.SchoolID)
	if err != nil {
		return nil, err
	}

	images := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	gallery := &models.Gallery{
		ID:        newID(),
		Title:     title,
		SchoolID:  schoolID,
		Images:    images,
		CreatedBy: userID,
	}
	if err := s.contentRepo.CreateGallery(ctx, gallery); err != nil {
		return nil, wrapCreateError("gallery", err)
	}
	return gallery, nil
}

func (s *contentServiceImpl) ListGalleries(ctx context.Context, schoolID string) ([]*models.Gallery, error) {
	galleries, err := s.contentRepo.ListGalleries(ctx, models.ContentFilter{SchoolID: schoolID})
	if err != nil {
		return nil, fmt.Errorf("error retrieving galleries: %w", err)
	}
	return galleries, nil
}
