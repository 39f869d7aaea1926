package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, BackendLocal, cfg.StorageBackend)
	assert.Equal(t, "hr_bookings_ru", cfg.BookingsKey)
	assert.Equal(t, 10*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 100, cfg.MaxRequestsPerMin)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", " Remote ")
	t.Setenv("API_URL", "https://script.example.com/exec")
	t.Setenv("REMOTE_TIMEOUT", "3s")
	t.Setenv("API_KEY", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendRemote, cfg.StorageBackend)
	assert.Equal(t, "https://script.example.com/exec", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.RemoteTimeout)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "Local", cfg: Config{StorageBackend: BackendLocal}},
		{name: "Mongo", cfg: Config{StorageBackend: BackendMongo}},
		{name: "Remote with URL", cfg: Config{StorageBackend: BackendRemote, APIURL: "https://x"}},
		{name: "Remote without URL", cfg: Config{StorageBackend: BackendRemote}, wantErr: true},
		{name: "Unknown backend", cfg: Config{StorageBackend: "sheets"}, wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
