package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell/inkwell-be/internal/database"
	"github.com/inkwell/inkwell-be/internal/models"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	GetAll() ([]models.PostWithAuthor, error)
	GetByID(id string) (models.PostWithAuthor, error)
	Create(title, body, userID string) (models.Post, error)
	Update(id, title, body, userID string) (models.Post, error)
	Delete(id string) (models.Post, error)
}

// PostService provides CRUD access to posts.
type PostService struct {
	db *gorm.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// GetAll retrieves every post, newest first, with its author reduced to
// {id, name}.
func (s *PostService) GetAll() ([]models.PostWithAuthor, error) {
	var posts []models.Post
	if err := s.db.Preload("User").Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}

	result := make([]models.PostWithAuthor, len(posts))
	for i := range posts {
		result[i] = posts[i].WithAuthor()
	}
	return result, nil
}

// GetByID retrieves a single post with its author. Returns
// models.ErrPostNotFound when no such post exists.
func (s *PostService) GetByID(id string) (models.PostWithAuthor, error) {
	var post models.Post
	if err := s.db.Preload("User").Where("id = ?", id).First(&post).Error; err != nil {
		return models.PostWithAuthor{}, database.ConvertNotFoundError(err, models.ErrPostNotFound)
	}
	return post.WithAuthor(), nil
}

// Create persists a new post owned by userID.
func (s *PostService) Create(title, body, userID string) (models.Post, error) {
	post := models.Post{
		ID:     uuid.New().String(),
		Title:  title,
		Body:   body,
		UserID: userID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Update replaces the title and body of an existing post.
func (s *PostService) Update(id, title, body, userID string) (models.Post, error) {
	var post models.Post
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		return models.Post{}, database.ConvertNotFoundError(err, models.ErrPostNotFound)
	}

	updates := map[string]any{"title": title, "body": body, "user_id": userID}
	if err := s.db.Model(&post).Updates(updates).Error; err != nil {
		return models.Post{}, err
	}

	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Delete removes a post and echoes the deleted row back.
func (s *PostService) Delete(id string) (models.Post, error) {
	var post models.Post
	if err := s.db.Where("id = ?", id).First(&post).Error; err != nil {
		return models.Post{}, database.ConvertNotFoundError(err, models.ErrPostNotFound)
	}
	if err := s.db.Delete(&post).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}
