package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshua-takyi/hallbook/internal/helpers"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/gotrue-go/types"
)

func TestStaticAuthenticator(t *testing.T) {
	auth := NewStaticAuthenticator("", "")
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		want     *models.Identity
		err      error
	}{
		{"admin", "admin", "admin123", &models.Identity{Username: "Administrator", Role: models.RoleAdmin}, nil},
		{"demo user", "john", "user123", &models.Identity{Username: "john", Role: models.RoleUser}, nil},
		{"admin name wrong password", "admin", "guess", &models.Identity{Username: "admin", Role: models.RoleUser}, nil},
		{"missing password", "john", "", nil, ErrMissingCredentials},
		{"missing username", "  ", "secret", nil, ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Authenticate(ctx, tt.username, tt.password)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaticAuthenticator_CustomAdmin(t *testing.T) {
	auth := NewStaticAuthenticator("root", "s3cret")

	id, err := auth.Authenticate(context.Background(), "root", "s3cret")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin())

	id, err = auth.Authenticate(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.False(t, id.IsAdmin())
}

type fakeSignIn struct {
	resp *types.TokenResponse
	err  error
}

func (f fakeSignIn) AuthenticateUser(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	return f.resp, f.err
}

func supabaseResponse(email string, appMeta, userMeta map[string]interface{}) *types.TokenResponse {
	resp := &types.TokenResponse{}
	resp.AccessToken = "provider-token"
	resp.User.Email = email
	resp.User.AppMetadata = appMeta
	resp.User.UserMetadata = userMeta
	return resp
}

func TestSupabaseAuthenticator(t *testing.T) {
	ctx := context.Background()

	admin := NewSupabaseAuthenticator(fakeSignIn{resp: supabaseResponse("ops@hallbook.in", map[string]interface{}{"role": "admin"}, nil)})
	id, err := admin.Authenticate(ctx, "ops@hallbook.in", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, id.Role)
	assert.Equal(t, "ops@hallbook.in", id.Username)

	user := NewSupabaseAuthenticator(fakeSignIn{resp: supabaseResponse("meera@example.com", nil, map[string]interface{}{"username": "meera"})})
	id, err = user.Authenticate(ctx, "meera@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, id.Role)
	assert.Equal(t, "meera", id.Username)
	assert.Equal(t, "meera@example.com", id.Email)

	failing := NewSupabaseAuthenticator(fakeSignIn{err: errors.New("invalid email or password")})
	_, err = failing.Authenticate(ctx, "meera@example.com", "bad")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = failing.Authenticate(ctx, "not-an-email", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = failing.Authenticate(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func newTestAuthService() (*AuthService, *models.MemoryRepo) {
	repo := models.MemoryNewRepo()
	tokens := helpers.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(NewStaticAuthenticator("", ""), repo, tokens, testLogger()), repo
}

func TestAuthService_LoginPersistsSession(t *testing.T) {
	as, _ := newTestAuthService()
	ctx := context.Background()

	res, err := as.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.Session{Type: models.RoleAdmin, Username: "Administrator", IsAuthenticated: true}, res.Session)
	assert.NotEmpty(t, res.Token)

	claims, err := as.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, "Administrator", claims.Username)

	session, err := as.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.IsAdmin())

	require.NoError(t, as.Logout(ctx))
	session, err = as.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestAuthService_LoginRejected(t *testing.T) {
	as, repo := newTestAuthService()

	_, err := as.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = repo.GetSlot(context.Background(), models.UserAuthKey)
	assert.ErrorIs(t, err, models.ErrSlotNotFound)
}

func TestAuthService_CorruptSessionRemoved(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"type":`,
		"unknown role":      `{"type":"owner","username":"x","isAuthenticated":true}`,
		"not authenticated": `{"type":"user","username":"x","isAuthenticated":false}`,
		"no username":       `{"type":"admin","username":"","isAuthenticated":true}`,
	}

	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			as, repo := newTestAuthService()
			ctx := context.Background()
			require.NoError(t, repo.SetSlot(ctx, models.UserAuthKey, []byte(blob)))

			session, err := as.CurrentSession(ctx)
			require.NoError(t, err)
			assert.Nil(t, session)

			_, err = repo.GetSlot(ctx, models.UserAuthKey)
			assert.ErrorIs(t, err, models.ErrSlotNotFound)
		})
	}
}

func TestAuthService_SessionLeavesBookingDataAlone(t *testing.T) {
	as, repo := newTestAuthService()
	ctx := context.Background()
	require.NoError(t, repo.SetSlot(ctx, models.BookingDataKey, []byte(`{"bookings":[]}`)))

	_, err := as.Login(ctx, "john", "user123")
	require.NoError(t, err)
	require.NoError(t, as.Logout(ctx))

	blob, err := repo.GetSlot(ctx, models.BookingDataKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bookings":[]}`, string(blob))
}
