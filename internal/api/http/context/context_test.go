package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/taskvault/taskvault-server/internal/model"
)

func TestManager_Roundtrip(t *testing.T) {
	m := NewManager()

	user := model.User{ID: uuid.New(), Email: "a@b.c"}
	token := model.AuthToken{ID: uuid.New(), JTI: "jti-1", UserID: user.ID}

	ctx := m.SetAuthToContext(context.Background(), user, token)

	gotUser, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, gotUser)

	gotToken, ok := m.GetTokenFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, token, gotToken)
}

func TestManager_EmptyContext(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = m.GetTokenFromContext(context.Background())
	assert.False(t, ok)
}
