package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-movie-lists/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSearchService_Search(t *testing.T) {
	payload := json.RawMessage(`{"page":1,"results":[{"id":603,"media_type":"movie","title":"The Matrix"}]}`)
	upstreamErr := errors.New("upstream down")
	cacheErr := errors.New("redis down")

	tests := []struct {
		name      string
		withCache bool
		mockSetup func(searcher *services.MockMovieSearcher, cache *services.MockSearchCache)
		want      json.RawMessage
		wantErr   error
	}{
		{
			name: "no cache configured",
			mockSetup: func(searcher *services.MockMovieSearcher, _ *services.MockSearchCache) {
				searcher.EXPECT().SearchMulti(gomock.Any(), "matrix").Return(payload, nil)
			},
			want: payload,
		},
		{
			name:      "cache hit skips the upstream call",
			withCache: true,
			mockSetup: func(_ *services.MockMovieSearcher, cache *services.MockSearchCache) {
				cache.EXPECT().Get(gomock.Any(), "matrix").Return([]byte(payload), nil)
			},
			want: payload,
		},
		{
			name:      "cache miss stores the payload",
			withCache: true,
			mockSetup: func(searcher *services.MockMovieSearcher, cache *services.MockSearchCache) {
				cache.EXPECT().Get(gomock.Any(), "matrix").Return(nil, nil)
				searcher.EXPECT().SearchMulti(gomock.Any(), "matrix").Return(payload, nil)
				cache.EXPECT().Set(gomock.Any(), "matrix", []byte(payload)).Return(nil)
			},
			want: payload,
		},
		{
			name:      "cache failures fall through",
			withCache: true,
			mockSetup: func(searcher *services.MockMovieSearcher, cache *services.MockSearchCache) {
				cache.EXPECT().Get(gomock.Any(), "matrix").Return(nil, cacheErr)
				searcher.EXPECT().SearchMulti(gomock.Any(), "matrix").Return(payload, nil)
				cache.EXPECT().Set(gomock.Any(), "matrix", gomock.Any()).Return(cacheErr)
			},
			want: payload,
		},
		{
			name:      "upstream error is not cached",
			withCache: true,
			mockSetup: func(searcher *services.MockMovieSearcher, cache *services.MockSearchCache) {
				cache.EXPECT().Get(gomock.Any(), "matrix").Return(nil, nil)
				searcher.EXPECT().SearchMulti(gomock.Any(), "matrix").Return(nil, upstreamErr)
			},
			wantErr: upstreamErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			searcher := services.NewMockMovieSearcher(ctrl)
			cache := services.NewMockSearchCache(ctrl)
			tt.mockSetup(searcher, cache)

			var svc *services.SearchService
			if tt.withCache {
				svc = services.NewSearchService(searcher, cache)
			} else {
				svc = services.NewSearchService(searcher, nil)
			}

			got, err := svc.Search(context.Background(), "matrix")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.JSONEq(t, string(tt.want), string(got))
			}
		})
	}
}
