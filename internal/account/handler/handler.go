// Package handler exposes the deletion request authority over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kith-app/kith/internal/platform/middleware"
	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

// Service defines the deletion operations the handler delegates to.
type Service interface {
	DeleteAccount(ctx context.Context, bearer string) error
}

// Handler handles account lifecycle endpoints.
type Handler struct {
	logger      *slog.Logger
	account     Service
	validator   middleware.JWTValidator
	revocations middleware.TokenRevocationChecker
}

// New creates an account Handler.
func New(account Service, validator middleware.JWTValidator, revocations middleware.TokenRevocationChecker, logger *slog.Logger) *Handler {
	return &Handler{
		logger:      logger,
		account:     account,
		validator:   validator,
		revocations: revocations,
	}
}

// Register registers the account routes with the chi router. The deletion
// endpoint takes no body and no parameters: the acting identity comes from
// the bearer credential alone.
func (h *Handler) Register(r chi.Router) {
	accountRouter := chi.NewRouter()
	accountRouter.Use(middleware.Recovery(h.logger))
	accountRouter.Use(middleware.RequestID)
	accountRouter.Use(middleware.Logger(h.logger))
	accountRouter.Use(middleware.Timeout(60 * time.Second))
	accountRouter.Use(middleware.RequireAuth(h.validator, h.revocations, h.logger))
	accountRouter.Post("/delete-account", h.handleDeleteAccount)

	r.Mount("/", accountRouter)
}

func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	bearer := middleware.GetBearerToken(ctx)
	if bearer == "" {
		// Unreachable with RequireAuth configured; fail safe regardless.
		h.logger.ErrorContext(ctx, "bearer missing from context despite auth middleware",
			"request_id", requestID,
		)
		writeError(w, derrors.New(derrors.CodeInternal, "authentication context error"))
		return
	}

	if err := h.account.DeleteAccount(ctx, bearer); err != nil {
		h.logger.ErrorContext(ctx, "account deletion failed",
			"request_id", requestID,
			"code", string(derrors.CodeOf(err)),
			"error", err.Error(),
		)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// writeError centralizes domain error translation to HTTP responses.
// Only the client-safe message crosses the wire.
func writeError(w http.ResponseWriter, err error) {
	status := derrors.ToHTTPStatus(derrors.CodeOf(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": derrors.MessageOf(err),
	})
}
