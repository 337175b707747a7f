package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modwall/internal/domain"
	"modwall/internal/eventbus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.Delivery.Endpoint)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Delivery.TimeoutSeconds)
	assert.Equal(t, domain.UnitMetre, cfg.UISettings.WidthUnit)
	assert.Equal(t, domain.UnitMillimetre, cfg.UISettings.HeightUnit)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "modwall.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.Brand = "Wallcraft"
	cfg.CatalogPath = "/srv/catalog.yaml"
	cfg.Delivery.Endpoint = "https://example.test/submissions"
	cfg.UISettings.ShowStock = false

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modwall.toml")
	content := `brand = "Wallcraft"

[delivery]
endpoint = "http://localhost:9000/submit"

[ui]
width_unit = "mm"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "Wallcraft", cfg.Brand)
	assert.Equal(t, "http://localhost:9000/submit", cfg.Delivery.Endpoint)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Delivery.TimeoutSeconds)
	assert.Equal(t, "modwall.log", cfg.LogFile)
	assert.Equal(t, domain.UnitMillimetre, cfg.UISettings.WidthUnit)
	assert.Equal(t, domain.UnitMillimetre, cfg.UISettings.HeightUnit)
	assert.True(t, cfg.UISettings.ShowStock)
}

func TestLoadNormalizesUnknownUnits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modwall.toml")
	content := `[ui]
width_unit = "furlong"
height_unit = "cubit"

[delivery]
timeout_seconds = -3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, domain.UnitMetre, cfg.UISettings.WidthUnit)
	assert.Equal(t, domain.UnitMillimetre, cfg.UISettings.HeightUnit)
	assert.Equal(t, DefaultTimeoutSeconds, cfg.Delivery.TimeoutSeconds)
}

func TestLoadFromMissingPath(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("brand = [unterminated"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	var mu sync.Mutex
	var got []string
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(eventbus.ConfigLoadedEvent).Path)
	})

	path := filepath.Join(t.TempDir(), "modwall.toml")
	svc := NewConfigServiceWithBus(bus)
	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
	_, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == path
	}, time.Second, 10*time.Millisecond)
}
