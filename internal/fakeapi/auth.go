package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/finboard/internal/user"
)

type claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

type principal struct {
	userID  uuid.UUID
	tokenID string
}

func principalFrom(ctx context.Context) principal {
	p, _ := ctx.Value(ctxKey{}).(principal)
	return p
}

func (s *Server) issueToken(u *user.User) (string, error) {
	now := s.now()

	c := claims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Server) parseToken(raw string) (*claims, error) {
	var c claims

	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || raw == "" {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "missing bearer token")
			return
		}

		c, err := s.parseToken(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid or expired token")
			return
		}

		s.mu.Lock()
		_, revoked := s.revoked[c.ID]
		_, known := s.accounts[c.UserID]
		s.mu.Unlock()

		if revoked || !known {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "session is no longer valid")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, principal{userID: c.UserID, tokenID: c.ID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tenantOf returns the data of the authenticated user. Callers hold s.mu.
func (s *Server) tenantOf(r *http.Request) *tenant {
	return s.tenants[principalFrom(r.Context()).userID]
}

var errEmailTaken = errors.New("email already registered")

// CreateUser registers an account directly, bypassing HTTP.
func (s *Server) CreateUser(params user.RegisterParams) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, params.Email) {
			return nil, errEmailTaken
		}
	}

	a := &account{
		User: user.User{
			ID:        uuid.New(),
			Name:      params.Name,
			Email:     params.Email,
			Salary:    params.Salary,
			CreatedAt: s.now(),
		},
		passwordHash: hash,
	}

	s.accounts[a.ID] = a
	s.tenants[a.ID] = newTenant()

	u := a.User

	return &u, nil
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterParams
	if !decode(w, r, &req) {
		return
	}

	u, err := s.CreateUser(req)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			writeError(w, http.StatusConflict, codeConflict, err.Error())
			return
		}

		s.logger.Error("failed to register user", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")

		return
	}

	s.respondWithToken(w, http.StatusCreated, u)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req user.Credentials
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	var found *account
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, req.Email) {
			found = a
			break
		}
	}
	s.mu.Unlock()

	if found == nil || bcrypt.CompareHashAndPassword(found.passwordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid email or password")
		return
	}

	u := found.User
	s.respondWithToken(w, http.StatusOK, &u)
}

func (s *Server) respondWithToken(w http.ResponseWriter, status int, u *user.User) {
	token, err := s.issueToken(u)
	if err != nil {
		s.logger.Error("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")

		return
	}

	writeJSON(w, status, user.AuthResult{Token: token, User: u})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[principalFrom(r.Context()).userID]
	if !ok {
		notFound(w, "user")
		return
	}

	writeJSON(w, http.StatusOK, a.User)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.revoked[principalFrom(r.Context()).tokenID] = struct{}{}
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) userRoutes(r chi.Router) {
	r.Get("/", s.listUsers)
	r.Get("/{id}", s.getUser)
	r.Put("/{id}", s.updateUser)
	r.Delete("/{id}", s.deleteUser)
}

// Only the caller's own account is visible.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.accounts[principalFrom(r.Context()).userID]
	writeJSON(w, http.StatusOK, []user.User{a.User})
}

func (s *Server) ownAccount(w http.ResponseWriter, r *http.Request) (*account, bool) {
	id, ok := pathID(w, r)
	if !ok {
		return nil, false
	}

	a, found := s.accounts[id]
	if !found || id != principalFrom(r.Context()).userID {
		notFound(w, "user")
		return nil, false
	}

	return a, true
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.ownAccount(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, a.User)
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateParams
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.ownAccount(w, r)
	if !ok {
		return
	}

	if req.Name != nil {
		a.Name = *req.Name
	}

	if req.Email != nil {
		a.Email = *req.Email
	}

	if req.Salary != nil {
		a.Salary = *req.Salary
	}

	a.UpdatedAt = touch(s.now())

	writeJSON(w, http.StatusOK, a.User)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.ownAccount(w, r)
	if !ok {
		return
	}

	delete(s.accounts, a.ID)
	delete(s.tenants, a.ID)

	w.WriteHeader(http.StatusNoContent)
}
