package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JMURv/go-attractions/internal/auth"
	"github.com/JMURv/go-attractions/internal/dto"
	md "github.com/JMURv/go-attractions/internal/models"
	"github.com/JMURv/go-attractions/internal/mocks"
	"github.com/JMURv/go-attractions/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestController_Register(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, nil, nil)

	testID := uuid.New()
	req := &dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
		Name:     "Ana",
	}

	tests := []struct {
		name     string
		setup    func()
		expected *dto.RegisterResponse
		err      error
		wantErr  bool
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().Hash(req.Password).Return("hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), req.Email, "hashed", req.Name).
					Return(testID, nil)
				mockAuth.EXPECT().NewToken(gomock.Any(), testID).Return("token", nil)
			},
			expected: &dto.RegisterResponse{
				User:  dto.PublicUser{ID: testID, Email: req.Email, Name: req.Name},
				Token: "token",
			},
		},
		{
			name: "TokenFailureKeepsAccount",
			setup: func() {
				mockAuth.EXPECT().Hash(req.Password).Return("hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), req.Email, "hashed", req.Name).
					Return(testID, nil)
				mockAuth.EXPECT().NewToken(gomock.Any(), testID).Return("", errors.New("sign error"))
			},
			expected: &dto.RegisterResponse{
				User: dto.PublicUser{ID: testID, Email: req.Email, Name: req.Name},
			},
		},
		{
			name: "DuplicateEmail",
			setup: func() {
				mockAuth.EXPECT().Hash(req.Password).Return("hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), req.Email, "hashed", req.Name).
					Return(uuid.Nil, repo.ErrAlreadyExists)
			},
			wantErr: true,
			err:     ErrAlreadyExists,
		},
		{
			name: "HashError",
			setup: func() {
				mockAuth.EXPECT().Hash(req.Password).Return("", errors.New("hash error"))
			},
			wantErr: true,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockAuth.EXPECT().Hash(req.Password).Return("hashed", nil)
				mockRepo.EXPECT().
					CreateUser(gomock.Any(), req.Email, "hashed", req.Name).
					Return(uuid.Nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.Register(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, res)
			}
		})
	}
}

func TestController_RegisterSendsWelcome(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockEmail := mocks.NewMockEmailService(ctrlMock)

	ctrl := New(mockAuth, mockRepo, nil, nil, mockEmail)
	req := &dto.RegisterRequest{Email: "ana@example.com", Password: "s3cret", Name: "Ana"}

	sent := make(chan struct{})
	mockAuth.EXPECT().Hash(req.Password).Return("hashed", nil)
	mockRepo.EXPECT().CreateUser(gomock.Any(), req.Email, "hashed", req.Name).Return(uuid.New(), nil)
	mockAuth.EXPECT().NewToken(gomock.Any(), gomock.Any()).Return("token", nil)
	mockEmail.EXPECT().
		SendWelcome(req.Email, req.Name).
		DoAndReturn(func(string, string) error {
			close(sent)
			return errors.New("smtp down")
		})

	res, err := ctrl.Register(context.Background(), req)
	assert.NoError(t, err)
	assert.NotNil(t, res)

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("welcome email was not sent")
	}
}

func TestController_Login(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockCore(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, nil, nil, nil)

	avatar := "https://cdn.example.com/a.png"
	req := &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"}
	newUser := func() *md.User {
		return &md.User{
			ID:       uuid.MustParse("0b8d2c5e-1b1a-4f6e-9c55-7f0a3c4d1e2f"),
			Email:    req.Email,
			Name:     "Ana",
			Password: "$2a$10$hashed",
			Avatar:   &avatar,
		}
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				u := newUser()
				mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
				mockAuth.EXPECT().
					ComparePasswords([]byte(u.Password), []byte(req.Password)).
					Return(nil)
				mockAuth.EXPECT().NewToken(gomock.Any(), u.ID).Return("token", nil)
			},
		},
		{
			name: "UnknownEmail",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), req.Email).
					Return(nil, repo.ErrNotFound)
			},
			wantErr: true,
			err:     ErrNotFound,
		},
		{
			name: "WrongPassword",
			setup: func() {
				u := newUser()
				mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
				mockAuth.EXPECT().
					ComparePasswords([]byte(u.Password), []byte(req.Password)).
					Return(auth.ErrInvalidCredentials)
			},
			wantErr: true,
			err:     auth.ErrInvalidCredentials,
		},
		{
			name: "RepositoryError",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail(gomock.Any(), req.Email).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "TokenError",
			setup: func() {
				u := newUser()
				mockRepo.EXPECT().GetUserByEmail(gomock.Any(), req.Email).Return(u, nil)
				mockAuth.EXPECT().
					ComparePasswords([]byte(u.Password), []byte(req.Password)).
					Return(nil)
				mockAuth.EXPECT().NewToken(gomock.Any(), u.ID).Return("", errors.New("sign error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			res, err := ctrl.Login(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.err != nil {
					assert.ErrorIs(t, err, tt.err)
				}
				assert.Nil(t, res)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "token", res.Token)
			assert.Equal(t, req.Email, res.User.Email)
			assert.Equal(t, &avatar, res.User.Avatar)
			assert.Empty(t, res.User.Password)
		})
	}
}
