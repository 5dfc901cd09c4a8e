package mockapi

import (
	"context"
	"net/http"
	"time"

	"wholesale-admin/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const sessionCookie = "admin_session"

const sessionTTL = 24 * time.Hour

type contextKey string

const userIDKey contextKey = "user_id"

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// handleLogin authenticates an admin and sets the session cookie. The
// login failure body uses the legacy "msg" field on purpose.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if msg, ok := decodeAndValidate(r, &req); !ok {
		respondWithMessage(w, http.StatusBadRequest, msg)
		return
	}

	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		respondWithMsg(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !user.IsAdmin() {
		respondWithMessage(w, http.StatusForbidden, "admin access required")
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Failed to sign session token", zap.Error(err))
		respondWithMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Expires:  time.Now().Add(sessionTTL),
	})

	s.logger.Info("Admin logged in", zap.String("email", user.Email))
	respondWithJSON(w, http.StatusOK, map[string]domain.User{"user": user})
}

// handleLogout clears the session cookie.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondWithMessage(w, http.StatusOK, "logged out")
}

// handleMe returns the principal behind the session cookie.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(userIDKey).(string)
	user, err := s.store.UserByID(userID)
	if err != nil {
		respondWithMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]domain.User{"user": user})
}

func (s *Server) issueToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// requireAdmin validates the session cookie's JWT and requires the admin
// role for every protected route.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			respondWithMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.secret), nil
		})
		if err != nil || !token.Valid {
			s.logger.Debug("Session token validation failed", zap.Error(err))
			respondWithMessage(w, http.StatusUnauthorized, "invalid session")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			respondWithMessage(w, http.StatusUnauthorized, "invalid session")
			return
		}
		role, _ := claims["role"].(string)
		if role != domain.RoleAdmin {
			respondWithMessage(w, http.StatusUnauthorized, "admin access required")
			return
		}
		userID, _ := claims["sub"].(string)

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
