package ctrl

import (
	"context"
	"errors"
	"testing"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/mocks"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_ListCategories(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, mockCache, nil, nil)

	categories := []*md.Category{{ID: 1, Name: "Museus"}, {ID: 2, Name: "Parques"}}

	t.Run("CacheHit", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), categoriesListKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*[]*md.Category) = categories
				return nil
			})

		res, err := ctrl.ListCategories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, categories, res)
	})

	t.Run("FromRepository", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), categoriesListKey, gomock.Any()).
			Return(errors.New("miss"))
		mockRepo.EXPECT().ListCategories(gomock.Any()).Return(categories, nil)
		mockCache.EXPECT().
			Set(gomock.Any(), config.DefaultCacheTime, categoriesListKey, gomock.Any()).
			Return()

		res, err := ctrl.ListCategories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, categories, res)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockCache.EXPECT().
			GetToStruct(gomock.Any(), categoriesListKey, gomock.Any()).
			Return(errors.New("miss"))
		mockRepo.EXPECT().ListCategories(gomock.Any()).Return(nil, errors.New("db error"))

		res, err := ctrl.ListCategories(ctx)
		assert.EqualError(t, err, "db error")
		assert.Nil(t, res)
	})
}

func TestController_CreateCategory(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, mockCache, nil, nil)
	req := &dto.CreateCategoryRequest{Name: "Praias"}

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().CreateCategory(gomock.Any(), req.Name).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), categoriesListKey).Return()

		assert.NoError(t, ctrl.CreateCategory(ctx, req))
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockRepo.EXPECT().CreateCategory(gomock.Any(), req.Name).Return(repo.ErrAlreadyExists)

		assert.ErrorIs(t, ctrl.CreateCategory(ctx, req), ErrAlreadyExists)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo.EXPECT().CreateCategory(gomock.Any(), req.Name).Return(errors.New("db error"))

		assert.EqualError(t, ctrl.CreateCategory(ctx, req), "db error")
	})
}
