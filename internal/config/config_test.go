package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.Product.Name)
	assert.Len(t, cfg.Features, 3)
	assert.Len(t, cfg.Problem.PainPoints, 3)
	assert.Len(t, cfg.Scale.Stats, 3)
	assert.Len(t, cfg.Proof.Metrics, 3)
	assert.NotEmpty(t, cfg.Roadmap.Completed)
	assert.NotEmpty(t, cfg.Ask.Title)
	assert.Equal(t, "screenshots", cfg.Screenshots)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesFieldByField(t *testing.T) {
	path := writeConfig(t, `
product:
  name: Skyhook
  tagline: Ship faster
problem:
  title: Deploys take all day
demo:
  screenshots: [dashboard, alerts]
ask:
  share_url: https://example.com/skyhook
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Skyhook", cfg.Product.Name)
	assert.Equal(t, "Ship faster", cfg.Product.Tagline)
	assert.Equal(t, "Deploys take all day", cfg.Problem.Title)
	assert.Equal(t, []string{"dashboard", "alerts"}, cfg.Demo.Screenshots)
	assert.Equal(t, "https://example.com/skyhook", cfg.Ask.ShareURL)

	// Untouched sections keep the template content.
	assert.Len(t, cfg.Problem.PainPoints, 3)
	assert.Len(t, cfg.Scale.Stats, 3)
	assert.Equal(t, Default().Roadmap, cfg.Roadmap)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "product: [not, a, mapping"))
	assert.Error(t, err)
}

func TestValidateColors(t *testing.T) {
	path := writeConfig(t, `
scale:
  stats:
    - value: 10x
      label: speedup
      color: chartreuse
`)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `
theme:
  colors:
    primary: not-a-color
`)
	_, err = Load(path)
	assert.Error(t, err)

	path = writeConfig(t, `
theme:
  colors:
    primary: "#112233"
scale:
  stats:
    - value: 10x
      label: speedup
      color: accent
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#112233", cfg.Theme.Colors["primary"])
}
