package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalogProvider struct {
	mock.Mock
}

func (m *mockCatalogProvider) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *mockCatalogProvider) FetchCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]domain.Category)
	return cs, args.Error(1)
}

func loaderConfig() service.CatalogLoaderConfig {
	return service.CatalogLoaderConfig{
		FetchTimeout: time.Second,
		MaxAttempts:  2,
	}
}

func TestCatalogLoaderLoad(t *testing.T) {
	products := []domain.Product{storeHeadphones(), storeChargingPad()}
	categories := []domain.Category{
		{ID: "electronics", Name: "Electronics", Count: 2},
	}

	t.Run("InstallsCatalog", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		provider := &mockCatalogProvider{}
		provider.On("FetchProducts", mock.Anything).Return(products, nil)
		provider.On("FetchCategories", mock.Anything).Return(categories, nil)

		loader := service.NewCatalogLoader(s, provider, loaderConfig())
		loader.Load(t.Context())

		assert.Len(t, s.Products(), 2)
		assert.Len(t, s.Categories(), 1)
		assert.False(t, s.IsLoading())
		assert.Empty(t, s.Notifications())
		provider.AssertExpectations(t)
	})

	t.Run("RetriesTransientFailure", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		provider := &mockCatalogProvider{}
		provider.On("FetchProducts", mock.Anything).
			Return(nil, errors.New("connection reset")).Once()
		provider.On("FetchProducts", mock.Anything).Return(products, nil).Once()
		provider.On("FetchCategories", mock.Anything).Return(categories, nil)

		loader := service.NewCatalogLoader(s, provider, loaderConfig())
		loader.Load(t.Context())

		assert.Len(t, s.Products(), 2)
		assert.Empty(t, s.Notifications())
		provider.AssertNumberOfCalls(t, "FetchProducts", 2)
	})

	t.Run("ExhaustedRetriesEmitOneErrorNotification", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		provider := &mockCatalogProvider{}
		provider.On("FetchProducts", mock.Anything).
			Return(nil, errors.New("service unavailable"))

		loader := service.NewCatalogLoader(s, provider, loaderConfig())
		loader.Load(t.Context())

		assert.Empty(t, s.Products())
		assert.False(t, s.IsLoading())

		ns := s.Notifications()
		require.Len(t, ns, 1)
		assert.Equal(t, domain.NotifyError, ns[0].Type)
		assert.Equal(t, "Error", ns[0].Title)

		provider.AssertNumberOfCalls(t, "FetchProducts", 2)
		provider.AssertNotCalled(t, "FetchCategories", mock.Anything)
	})

	t.Run("CategoryFailureLeavesCatalogEmpty", func(t *testing.T) {
		s := newTestStore(t, newMemBlob(), &manualScheduler{})
		provider := &mockCatalogProvider{}
		provider.On("FetchProducts", mock.Anything).Return(products, nil)
		provider.On("FetchCategories", mock.Anything).
			Return(nil, errors.New("service unavailable"))

		loader := service.NewCatalogLoader(s, provider, loaderConfig())
		loader.Load(t.Context())

		assert.Empty(t, s.Products())
		assert.Len(t, s.Notifications(), 1)
	})
}
