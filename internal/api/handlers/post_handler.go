package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-be/internal/auth"
	"github.com/inkwell/inkwell-be/internal/models"
	"github.com/inkwell/inkwell-be/internal/services"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service  services.PostServiceProvider
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service, validate: validator.New()}
}

// PostPayload defines the structure for create and update requests.
type PostPayload struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// postResponse pairs a post with the operation message.
type postResponse struct {
	models.Post
	Msg string `json:"msg"`
}

// GetAll lists every post, newest first.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.GetAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list posts")
		http.Error(w, "Failed to list posts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// Get retrieves a single post by its ID. A missing post yields a null
// body rather than an error status.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("null"))
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to get post")
		http.Error(w, "Failed to get post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(post)
}

// Create adds a post owned by the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.service.Create(payload.Title, payload.Body, session.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", session.UserID).Msg("Failed to create post")
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postResponse{post, "post created successfully"})
}

// Update replaces the title and body of an existing post.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.service.Update(id, payload.Title, payload.Body, session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to update post")
		http.Error(w, "Failed to update post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postResponse{post, "post updated successfully"})
}

// Delete removes a post and echoes the deleted row back.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.service.Delete(id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
		http.Error(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(postResponse{post, "post deleted successfully"})
}
