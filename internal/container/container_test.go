package container

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/joshua-takyi/hallbook/internal/config"
	"github.com/joshua-takyi/hallbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		StorageDriver: driver,
		AuthProvider:  config.AuthStatic,
		JWTSecret:     "secret",
		TokenTTL:      time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestNewContainer_Memory(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewContainer(context.Background(), testConfig(config.StorageMemory), logger, Clients{})
	require.NoError(t, err)
	defer c.Close()

	assert.IsType(t, &models.MemoryRepo{}, c.Repo)
	assert.Len(t, c.VenueService.Halls(), 3)
	assert.NotNil(t, c.AuthService)
	assert.NotNil(t, c.AdminService)
}

func TestNewContainer_FileRestoresState(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(config.StorageFile)
	cfg.DataDir = t.TempDir()
	ctx := context.Background()

	first, err := NewContainer(ctx, cfg, logger, Clients{})
	require.NoError(t, err)
	_, err = first.AuthService.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	second, err := NewContainer(ctx, cfg, logger, Clients{})
	require.NoError(t, err)
	session, err := second.AuthService.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.IsAdmin())
}

func TestNewContainer_MissingClients(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewContainer(context.Background(), testConfig(config.StorageMongo), logger, Clients{})
	assert.Error(t, err)

	cfg := testConfig(config.StorageMemory)
	cfg.AuthProvider = config.AuthSupabase
	_, err = NewContainer(context.Background(), cfg, logger, Clients{})
	assert.Error(t, err)
}
