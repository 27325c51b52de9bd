package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"profile-search-api/core/domain"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchFunc func(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
	lastReq    domain.SearchRequest
	calls      int
}

func (m *mockSearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	m.calls++
	m.lastReq = req
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.SearchResult{Username: req.Username, Links: []string{}}, nil
}

// mockToolStatus is a mock implementation of ToolStatus
type mockToolStatus struct {
	mock.Mock
}

func (m *mockToolStatus) Program() string {
	return m.Called().String(0)
}

func (m *mockToolStatus) ToolAvailable() bool {
	return m.Called().Bool(0)
}
