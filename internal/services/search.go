package services

//go:generate mockgen -source=search.go -destination=search_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

// MovieSearcher queries the external metadata API.
type MovieSearcher interface {
	SearchMulti(ctx context.Context, query string) (json.RawMessage, error)
}

// SearchCache caches raw search payloads.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]byte, error)
	Set(ctx context.Context, query string, payload []byte) error
}

// SearchService passes searches through to the metadata API, with an optional cache in front.
type SearchService struct {
	searcher MovieSearcher
	cache    SearchCache
}

// NewSearchService creates a new SearchService. cache may be nil.
func NewSearchService(searcher MovieSearcher, cache SearchCache) *SearchService {
	return &SearchService{
		searcher: searcher,
		cache:    cache,
	}
}

// Search returns the metadata API payload for query. Cache failures only degrade to a direct call.
func (s *SearchService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, query)
		if err != nil {
			logger.Log.Warnw("search cache read failed", "query", query, "error", err)
		} else if cached != nil {
			return json.RawMessage(cached), nil
		}
	}

	payload, err := s.searcher.SearchMulti(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, query, payload); err != nil {
			logger.Log.Warnw("search cache write failed", "query", query, "error", err)
		}
	}

	return payload, nil
}
