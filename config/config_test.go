package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/shangdaren/config"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, ":9998", cfg.Server.Addr)
	require.Equal(t, "/ws", cfg.Server.Path)
	require.Equal(t, 256, cfg.Server.OutboundBuffer)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	require.Equal(t, "level1", cfg.Game.RobotStrategy)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  addr: ":7000"
redis:
  addr: "localhost:6379"
  db: 3
nats:
  url: "nats://localhost:4222"
  reconnect_wait: 5s
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, ":7000", cfg.Server.Addr)
	require.Equal(t, "/ws", cfg.Server.Path)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
	require.Equal(t, 3, cfg.Redis.DB)
	require.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	require.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SDR_SERVER_ADDR", ":7100")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, ":7100", cfg.Server.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
