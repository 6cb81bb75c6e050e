package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const minimalConfig = `
[booking_api]
url = "http://bookings.local"

[discount_service]
url = "http://discounts.local"

[session]
hash_key = "0123456789abcdef0123456789abcdef"

[[facilities]]
id = "turf-main"
name = "Main Turf"
category = "turf"
unit_price = 1200
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "venue_draft", cfg.Session.CookieName)
	assert.Equal(t, domain.DefaultVenueRules(), cfg.Venue.Rules())
	assert.Equal(t, []domain.Facility{{
		ID: "turf-main", Name: "Main Turf", Category: domain.CategoryTurf, UnitPrice: 1200,
	}}, cfg.FacilityList())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("SESSION_BLOCK_KEY", "abcdefghijklmnop")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "abcdefghijklmnop", cfg.Session.BlockKey)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_VenueOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+"\n[venue]\npool_capacity = 30\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Venue.Rules().PoolCapacity)
}

func TestLoad_InvalidFacilities(t *testing.T) {
	tests := []struct {
		name  string
		extra string
	}{
		{
			name:  "duplicate id",
			extra: "[[facilities]]\nid = \"turf-main\"\nname = \"Other\"\ncategory = \"turf\"\nunit_price = 900\n",
		},
		{
			name:  "unknown category",
			extra: "[[facilities]]\nid = \"court\"\nname = \"Court\"\ncategory = \"tennis\"\nunit_price = 900\n",
		},
		{
			name:  "non-positive price",
			extra: "[[facilities]]\nid = \"pool\"\nname = \"Pool\"\ncategory = \"pool\"\nunit_price = 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, minimalConfig+"\n"+tt.extra))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_InvalidSessionKey(t *testing.T) {
	t.Setenv("SESSION_HASH_KEY", "short")

	_, err := Load(writeConfig(t, minimalConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
