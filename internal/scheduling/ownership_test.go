package scheduling

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

func TestIsCenterAdmin(t *testing.T) {
	tests := []struct {
		name string
		role model.Role
		want bool
	}{
		{"center admin", model.RoleCenterAdmin, true},
		{"system admin", model.RoleSystemAdmin, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserStore{}
			centers := &mockCenterStore{}
			userID := uuid.New()
			users.On("GetByID", mock.Anything, userID).
				Return(&model.User{ID: userID, Role: tt.role}, nil)

			got, err := NewOwnershipRegistry(users, centers).IsCenterAdmin(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsCenterAdminUnknownUser(t *testing.T) {
	users := &mockUserStore{}
	userID := uuid.New()
	users.On("GetByID", mock.Anything, userID).Return(nil, ErrUserNotFound)

	_, err := NewOwnershipRegistry(users, &mockCenterStore{}).IsCenterAdmin(context.Background(), userID)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOwnedCenter(t *testing.T) {
	t.Run("owns none", func(t *testing.T) {
		centers := &mockCenterStore{}
		userID := uuid.New()
		centers.On("GetByOwner", mock.Anything, userID).Return(nil, ErrCenterNotFound)

		c, err := NewOwnershipRegistry(&mockUserStore{}, centers).OwnedCenter(context.Background(), userID)

		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("owns one", func(t *testing.T) {
		centers := &mockCenterStore{}
		userID := uuid.New()
		owned := &model.Center{ID: uuid.New(), OwnerID: &userID}
		centers.On("GetByOwner", mock.Anything, userID).Return(owned, nil)

		c, err := NewOwnershipRegistry(&mockUserStore{}, centers).OwnedCenter(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, owned, c)
	})
}
