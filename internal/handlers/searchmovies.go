package handlers

//go:generate mockgen -source=searchmovies.go -destination=searchmovies_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

// MovieSearcher defines the interface that the search service must implement.
type MovieSearcher interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// NewSearchMoviesHandler returns an HTTP handler that proxies a movie and TV search.
// The upstream payload is returned verbatim.
// @Summary Search movies and shows
// @Description Proxy to the external metadata search API
// @Tags search
// @Produce json
// @Param query path string true "Search text"
// @Success 200 {object} object "Upstream search payload"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /searchmovies/{query} [get]
func NewSearchMoviesHandler(svc MovieSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := chi.URLParam(r, "query")

		payload, err := svc.Search(r.Context(), query)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(payload); err != nil {
			logger.Log.Errorw("failed to write search payload", "query", query, "err", err)
		}
	}
}
