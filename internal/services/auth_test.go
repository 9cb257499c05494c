package services

import (
	"context"
	"errors"
	"testing"

	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		writer.EXPECT().Save(ctx, "ravi", gomock.Any(), "ravi@example.com", models.RoleStaff).Return(nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "ravi", "secret123", "ravi@example.com")
		assert.NoError(t, err)
	})

	t.Run("always persists the staff role", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		writer.EXPECT().Save(ctx, "asha", gomock.Any(), "asha@example.com", models.RoleStaff).Return(nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "asha", "secret123", "asha@example.com")
		assert.NoError(t, err)
	})

	t.Run("user already exists", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(&models.UserDB{UserID: uuid.New(), Username: "ravi"}, nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "ravi", "secret123", "ravi@example.com")
		assert.Equal(t, ErrUserAlreadyExists, err)
	})

	t.Run("reader error propagates", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		svc := NewAuthService(reader, writer, nil)
		err := svc.Register(ctx, "ravi", "secret123", "ravi@example.com")
		assert.EqualError(t, err, "db down")
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates the admin account", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		writer.EXPECT().Save(ctx, "asha", gomock.Any(), "asha@example.com", models.RoleAdmin).Return(nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.EnsureAdmin(ctx, "asha", "secret123", "asha@example.com")
		assert.NoError(t, err)
	})

	t.Run("existing admin is left untouched", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(&models.UserDB{UserID: uuid.New(), Username: "asha", Role: models.RoleAdmin}, nil)

		svc := NewAuthService(reader, writer, nil)
		err := svc.EnsureAdmin(ctx, "asha", "secret123", "asha@example.com")
		assert.NoError(t, err)
	})

	t.Run("reader error propagates", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		svc := NewAuthService(reader, writer, nil)
		err := svc.EnsureAdmin(ctx, "asha", "secret123", "asha@example.com")
		assert.EqualError(t, err, "db down")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.UserDB{
		UserID:       userID,
		Username:     "ravi",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(user, nil)
		jwtGen.EXPECT().Generate(ctx, userID, models.RoleAdmin).Return("token123", nil)

		svc := NewAuthService(reader, nil, jwtGen)
		token, err := svc.Login(ctx, "ravi", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("unknown user", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(nil, nil)

		svc := NewAuthService(reader, nil, nil)
		_, err := svc.Login(ctx, "ghost", "secret123")
		assert.Equal(t, ErrUserDoesNotExist, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsernameOrEmail(ctx, gomock.Any(), gomock.Nil()).Return(user, nil)

		svc := NewAuthService(reader, nil, nil)
		_, err := svc.Login(ctx, "ravi", "wrong")
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}
