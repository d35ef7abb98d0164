package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "3000", cfg.HTTP.Port)
	assert.Equal(t, int64(10<<20), cfg.HTTP.BodyLimit)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.False(t, cfg.GRPC.Enabled)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "wedwisely-db", cfg.Mongo.Database)
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, "7d", cfg.JWT.ExpiresIn.Text)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.ExpiresIn.Duration)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshExpiresIn.Duration)
	assert.Equal(t, "wedwisely-backend", cfg.JWT.Issuer)
	assert.Equal(t, "wedwisely-users", cfg.JWT.Audience)
	assert.Equal(t, int64(100), cfg.RateLimit.Max)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "wedwisely-avatars", cfg.Storage.Bucket)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log config override",
			envVars: map[string]string{
				"LOG_LEVEL":  "debug",
				"LOG_FORMAT": "json",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":            "8080",
				"HTTP_ENABLE_HTTPS":    "true",
				"HTTP_CERT_FILE_NAME":  "custom.pem",
				"HTTP_BODY_LIMIT":      "1024",
				"HTTP_REQUEST_TIMEOUT": "5s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.True(t, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.HTTP.CertFileName)
				assert.Equal(t, int64(1024), cfg.HTTP.BodyLimit)
				assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_ENABLED":         "true",
				"GRPC_PORT":            "9090",
				"GRPC_HEALTH_INTERVAL": "1m",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.GRPC.Enabled)
				assert.Equal(t, "9090", cfg.GRPC.Port)
				assert.Equal(t, time.Minute, cfg.GRPC.HealthInterval)
			},
		},
		{
			name: "mongo config override",
			envVars: map[string]string{
				"MONGODB_URI":      "mongodb://admin:wedding123@db:27017/?authSource=admin",
				"MONGODB_DATABASE": "weddings",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "mongodb://admin:wedding123@db:27017/?authSource=admin", cfg.Mongo.URI)
				assert.Equal(t, "weddings", cfg.Mongo.Database)
			},
		},
		{
			name: "postgres driver",
			envVars: map[string]string{
				"STORE_DRIVER": "postgres",
				"POSTGRES_DSN": "postgres://wed:wed@pg:5432/wedwisely?sslmode=disable",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, StorePostgres, cfg.StoreDriver)
				assert.Equal(t, "postgres://wed:wed@pg:5432/wedwisely?sslmode=disable", cfg.Postgres.DSN)
			},
		},
		{
			name: "jwt config override",
			envVars: map[string]string{
				"JWT_SECRET":             "customsecret",
				"JWT_REFRESH_SECRET":     "refreshsecret",
				"JWT_EXPIRES_IN":         "36h",
				"JWT_REFRESH_EXPIRES_IN": "1d12h",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "customsecret", cfg.JWT.Secret)
				assert.Equal(t, "refreshsecret", cfg.JWT.RefreshSecret)
				assert.Equal(t, "36h", cfg.JWT.ExpiresIn.Text)
				assert.Equal(t, 36*time.Hour, cfg.JWT.ExpiresIn.Duration)
				assert.Equal(t, 36*time.Hour, cfg.JWT.RefreshExpiresIn.Duration)
			},
		},
		{
			name: "cors override",
			envVars: map[string]string{
				"CORS_ALLOW_ORIGINS": "https://wedwisely.app,https://admin.wedwisely.app",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, []string{"https://wedwisely.app", "https://admin.wedwisely.app"}, cfg.CORS.AllowOrigins)
			},
		},
		{
			name: "rate limit and redis override",
			envVars: map[string]string{
				"RATE_LIMIT_ENABLED": "true",
				"RATE_LIMIT_MAX":     "5",
				"RATE_LIMIT_WINDOW":  "1m",
				"REDIS_ADDR":         "redis:6379",
				"REDIS_DB":           "2",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.RateLimit.Enabled)
				assert.Equal(t, int64(5), cfg.RateLimit.Max)
				assert.Equal(t, time.Minute, cfg.RateLimit.Window)
				assert.Equal(t, "redis:6379", cfg.Redis.Addr)
				assert.Equal(t, 2, cfg.Redis.DB)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"MINIO_ENABLED":     "true",
				"MINIO_ENDPOINT":    "minio.example.com:9000",
				"MINIO_ACCESS_KEY":  "access123",
				"MINIO_SECRET_KEY":  "secret123",
				"MINIO_BUCKET_NAME": "custom-bucket",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.Storage.Enabled)
				assert.Equal(t, "minio.example.com:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "access123", cfg.Storage.AccessKey)
				assert.Equal(t, "secret123", cfg.Storage.SecretKey)
				assert.Equal(t, "custom-bucket", cfg.Storage.Bucket)
				assert.True(t, cfg.Storage.UseSSL)
			},
		},
		{
			name: "admin seed override",
			envVars: map[string]string{
				"ADMIN_EMAIL":      "admin@wedwisely.com",
				"ADMIN_FIRST_NAME": "Ada",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "admin@wedwisely.com", cfg.Admin.Email)
				assert.Equal(t, "Ada", cfg.Admin.FirstName)
				assert.Equal(t, "User", cfg.Admin.LastName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{"unknown env", map[string]string{"APP_ENV": "staging"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"postgres without dsn", map[string]string{"STORE_DRIVER": "postgres", "POSTGRES_DSN": ""}},
		{"bcrypt cost too low", map[string]string{"BCRYPT_COST": "3"}},
		{"bcrypt cost too high", map[string]string{"BCRYPT_COST": "15"}},
		{"bad lifetime", map[string]string{"JWT_EXPIRES_IN": "seven days"}},
		{"zero lifetime", map[string]string{"JWT_EXPIRES_IN": "0s"}},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}},
		{"zero grpc health interval", map[string]string{"GRPC_ENABLED": "true", "GRPC_HEALTH_INTERVAL": "0s"}},
		{"negative grpc health interval", map[string]string{"GRPC_ENABLED": "true", "GRPC_HEALTH_INTERVAL": "-5s"}},
		{"cors origin without scheme", map[string]string{"CORS_ALLOW_ORIGINS": "localhost:3000"}},
		{"default secret in production", map[string]string{"APP_ENV": "production"}},
		{"short secret in production", map[string]string{"APP_ENV": "production", "JWT_SECRET": "short"}},
		{"memory store in production", map[string]string{
			"APP_ENV":      "production",
			"JWT_SECRET":   "0123456789abcdef0123456789abcdef",
			"STORE_DRIVER": "memory",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_ProductionWithStrongSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"30d", 30 * 24 * time.Hour, false},
		{"1d12h", 36 * time.Hour, false},
		{"36h", 36 * time.Hour, false},
		{"90m", 90 * time.Minute, false},
		{" 2d ", 48 * time.Hour, false},
		{"d", 0, true},
		{"-1d", 0, true},
		{"xd", 0, true},
		{"1dfoo", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
