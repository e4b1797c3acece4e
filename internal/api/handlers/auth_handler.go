package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/inkwell/inkwell-be/internal/auth"
	"github.com/inkwell/inkwell-be/internal/models"
	"github.com/inkwell/inkwell-be/internal/services"
)

// AuthHandler handles HTTP requests for signup, login and session state.
type AuthHandler struct {
	users    services.UserServiceProvider
	sessions services.SessionServiceProvider
	policy   auth.CookiePolicy
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, sessions services.SessionServiceProvider, policy auth.CookiePolicy) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		policy:   policy,
		validate: validator.New(),
	}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(struct {
		models.PublicUser
		Msg string `json:"msg"`
	}{user, "User account of " + user.Name + " created successfully"})
}

// Login verifies credentials and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.VerifyCredentials(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User does not exists")
		case errors.Is(err, models.ErrInvalidCredentials):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Credential check failed")
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
		}
		return
	}

	session, err := h.sessions.Create(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create session")
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	h.policy.Issue(w, session)
	writeMessage(w, http.StatusOK, "Successfully logged in")
}

// SignupAndLogin registers a new account and immediately establishes a
// session for it.
func (h *AuthHandler) SignupAndLogin(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			writeMessage(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		http.Error(w, "Failed to register user", http.StatusInternalServerError)
		return
	}

	session, err := h.sessions.Create(models.User{ID: user.ID, Name: user.Name, Email: user.Email})
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create session")
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	h.policy.Issue(w, session)
	writeMessage(w, http.StatusOK, "Successfully created account of "+user.Name+" and logged in")
}

// Status returns the principal of the current session, or 404 when the
// request is anonymous.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "No saved session found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.Principal())
}

// Logout destroys the current session. Store-side destruction failures
// are logged but never block the response.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusNotFound, "No saved session found")
		return
	}

	if err := h.sessions.Delete(session.Token); err != nil {
		log.Error().Err(err).Str("user_id", session.UserID).Msg("Failed to destroy session")
	}

	h.policy.Clear(w)
	writeMessage(w, http.StatusOK, "Successfully logged out")
}

// writeMessage writes a {"msg": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
