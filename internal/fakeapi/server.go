// Package fakeapi is an in-memory implementation of the finance backend for
// local development and tests. Data lives only as long as the Server.
package fakeapi

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/finboard/internal/dates"
)

type Server struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*account
	tenants  map[uuid.UUID]*tenant
	revoked  map[string]struct{}

	idem *idempotencyCache

	secret      []byte
	tokenTTL    time.Duration
	bcryptCost  int
	corsOrigins []string
	logRequests bool
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*Server)

func WithTokenTTL(d time.Duration) Option {
	return func(s *Server) { s.tokenTTL = d }
}

// WithBcryptCost lowers the password hashing cost, mostly for tests.
func WithBcryptCost(cost int) Option {
	return func(s *Server) { s.bcryptCost = cost }
}

func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.corsOrigins = origins }
}

func WithRequestLogging() Option {
	return func(s *Server) { s.logRequests = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func New(secret string, opts ...Option) *Server {
	s := &Server{
		accounts:   make(map[uuid.UUID]*account),
		tenants:    make(map[uuid.UUID]*tenant),
		revoked:    make(map[string]struct{}),
		idem:       newIdempotencyCache(),
		secret:     []byte(secret),
		tokenTTL:   24 * time.Hour,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.Default(),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) today() dates.Date {
	return dates.Of(s.now())
}

func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	if s.logRequests {
		router.Use(middleware.Logger)
	}

	router.Use(middleware.Recoverer)

	if len(s.corsOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.login)
		r.Post("/register", s.register)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)
			r.Get("/me", s.me)
			r.Post("/logout", s.logout)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.idempotent)

		r.Route("/users", s.userRoutes)
		r.Route("/categories", s.categoryRoutes)
		r.Route("/banks", s.bankRoutes)
		r.Route("/vaults", s.vaultRoutes)
		r.Route("/expenses", s.expenseRoutes)
		r.Route("/bills", s.billRoutes)
		r.Route("/extra-income", s.incomeRoutes)
		r.Route("/receivables", s.receivableRoutes)
		r.Route("/transactions", s.transactionRoutes)
	})

	return router
}
