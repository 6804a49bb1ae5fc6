package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

const (
	cacheHeader          = "X-Recipe-Cache"
	queryParam           = "query"
	restrictionsParam    = "dietary_restrictions"
	missingQueryDetail   = "query parameter is required"
	methodNotAllowedText = "method not allowed"
)

// Handler handles HTTP requests.
type Handler struct {
	resolver *domain.RecipeResolver
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(resolver *domain.RecipeResolver) *Handler {
	return &Handler{
		resolver: resolver,
	}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Detail string `json:"detail"`
}

// HandleRecipe resolves GET /recipe?query=...&dietary_restrictions=...
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Early validation.
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, methodNotAllowedText)
		return
	}

	params := r.URL.Query()
	query := params.Get(queryParam)
	if strings.TrimSpace(query) == "" {
		writeError(w, http.StatusBadRequest, missingQueryDetail)
		return
	}
	restrictions := params[restrictionsParam]

	logger := observability.FromContext(ctx)
	logger.Info("recipe request received",
		observability.String("query", query),
		observability.Strings("dietary_restrictions", restrictions),
	)

	result, err := h.resolver.Resolve(ctx, query, restrictions)
	if err != nil {
		status := statusForError(err)
		logger.Error("recipe resolution failed",
			observability.Error(err),
			observability.Int("status", status))
		writeError(w, status, err.Error())
		return
	}

	logger.Info("recipe request succeeded",
		observability.Bool("cache_hit", result.Hit),
		observability.String("title", result.Recipe.Title))

	setCacheHeaders(w, result)
	writeJSON(w, http.StatusOK, result.Recipe)
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, methodNotAllowedText)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// statusForError maps resolver failures onto HTTP status codes.
func statusForError(err error) int {
	var (
		parseErr       *domain.GenerationParseError
		unavailableErr *domain.GenerationUnavailableError
		cacheErr       *domain.CacheIOError
	)

	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrGenerationTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &unavailableErr):
		return http.StatusBadGateway
	case errors.As(err, &cacheErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// setCacheHeaders reports whether the recipe came from the cache.
func setCacheHeaders(w http.ResponseWriter, result *domain.Resolution) {
	if result.Hit {
		w.Header().Set(cacheHeader, "HIT")
		return
	}
	w.Header().Set(cacheHeader, "MISS")
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Already written status, can't change it.
		return
	}
}
