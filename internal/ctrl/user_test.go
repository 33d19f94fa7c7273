package ctrl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/JMURv/go-attractions/internal/config"
	"github.com/JMURv/go-attractions/internal/dto"
	"github.com/JMURv/go-attractions/internal/mocks"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/JMURv/go-attractions/internal/repo/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_GetBiometrics(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, mockCache, nil, nil)

	uid := uuid.New()
	cacheKey := fmt.Sprintf(biometricsCacheKey, uid)

	tests := []struct {
		name     string
		setup    func()
		expected bool
		wantErr  bool
	}{
		{
			name: "CacheHit",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						dest.(*dto.BiometricsResponse).Enabled = true
						return nil
					})
			},
			expected: true,
		},
		{
			name: "FromRepository",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(errors.New("miss"))
				mockRepo.EXPECT().GetBiometrics(gomock.Any(), uid).Return(true, nil)
				mockCache.EXPECT().
					Set(gomock.Any(), config.MinCacheTime, cacheKey, gomock.Any()).
					Return()
			},
			expected: true,
		},
		{
			name: "NoRowIsDisabled",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(errors.New("miss"))
				mockRepo.EXPECT().GetBiometrics(gomock.Any(), uid).Return(false, repo.ErrNotFound)
				mockCache.EXPECT().
					Set(gomock.Any(), config.MinCacheTime, cacheKey, gomock.Any()).
					Return()
			},
			expected: false,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockCache.EXPECT().
					GetToStruct(gomock.Any(), cacheKey, gomock.Any()).
					Return(errors.New("miss"))
				mockRepo.EXPECT().GetBiometrics(gomock.Any(), uid).Return(false, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.GetBiometrics(ctx, uid)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestController_SetBiometrics(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, mockCache, nil, nil)

	uid := uuid.New()
	cacheKey := fmt.Sprintf(biometricsCacheKey, uid)

	t.Run("Success", func(t *testing.T) {
		mockRepo.EXPECT().SetBiometrics(gomock.Any(), uid, true).Return(true, nil)
		mockCache.EXPECT().Delete(gomock.Any(), cacheKey).Return()

		res, err := ctrl.SetBiometrics(ctx, uid, true)
		assert.NoError(t, err)
		assert.True(t, res)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		mockRepo.EXPECT().SetBiometrics(gomock.Any(), uid, true).Return(false, repo.ErrNotFound)

		res, err := ctrl.SetBiometrics(ctx, uid, true)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, res)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo.EXPECT().SetBiometrics(gomock.Any(), uid, false).Return(false, errors.New("db error"))

		_, err := ctrl.SetBiometrics(ctx, uid, false)
		assert.EqualError(t, err, "db error")
	})
}

func TestController_UpdateAvatar(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, nil, nil)

	uid := uuid.New()
	avatar := "https://cdn.example.com/a.png"

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "Success"},
		{name: "UnknownUser", err: repo.ErrNotFound, want: ErrNotFound},
		{name: "RepositoryError", err: errors.New("db error"), want: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().UpdateAvatar(gomock.Any(), uid, avatar).Return(tt.err)

			err := ctrl.UpdateAvatar(ctx, uid, avatar)
			if tt.want != nil {
				assert.EqualError(t, err, tt.want.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestController_UploadAvatar(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockS3 := mocks.NewMockS3Service(ctrlMock)

	ctx := context.Background()
	ctrl := New(nil, mockRepo, nil, mockS3, nil)

	uid := uuid.New()
	url := "http://localhost:9000/attractions/avatar.png"

	t.Run("Success", func(t *testing.T) {
		file := &s3.UploadFileRequest{File: []byte("png"), Filename: "Me.PNG", ContentType: "image/png"}
		mockS3.EXPECT().
			UploadFile(gomock.Any(), file).
			DoAndReturn(func(_ context.Context, req *s3.UploadFileRequest) (string, error) {
				assert.True(t, strings.HasPrefix(req.Filename, "avatars/"+uid.String()+"-"))
				assert.True(t, strings.HasSuffix(req.Filename, ".png"))
				return url, nil
			})
		mockRepo.EXPECT().UpdateAvatar(gomock.Any(), uid, url).Return(nil)

		res, err := ctrl.UploadAvatar(ctx, uid, file)
		assert.NoError(t, err)
		assert.Equal(t, url, res)
	})

	t.Run("UploadError", func(t *testing.T) {
		file := &s3.UploadFileRequest{File: []byte("png"), Filename: "me.png"}
		mockS3.EXPECT().UploadFile(gomock.Any(), file).Return("", errors.New("s3 error"))

		res, err := ctrl.UploadAvatar(ctx, uid, file)
		assert.EqualError(t, err, "s3 error")
		assert.Empty(t, res)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		file := &s3.UploadFileRequest{File: []byte("png"), Filename: "me.png"}
		mockS3.EXPECT().UploadFile(gomock.Any(), file).Return(url, nil)
		mockRepo.EXPECT().UpdateAvatar(gomock.Any(), uid, url).Return(repo.ErrNotFound)

		_, err := ctrl.UploadAvatar(ctx, uid, file)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
