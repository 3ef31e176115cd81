package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	assert.Equal(t, "5s", cfg.Timeouts.Operation.String(), "default operation timeout")

	// Graph defaults
	assert.Equal(t, "neo4j", cfg.Graph.Driver)
	assert.Equal(t, "bolt://localhost:7687", cfg.Graph.URI)
	assert.Equal(t, "neo4j", cfg.Graph.Username)
	assert.Empty(t, cfg.Graph.Password)
	assert.Empty(t, cfg.Graph.Database)
	assert.Equal(t, 50, cfg.Graph.MaxPoolSize)
	assert.Equal(t, 5, cfg.Graph.ConnectAttempts)

	// Breaker defaults
	assert.True(t, cfg.Breaker.Enabled)
	assert.Equal(t, uint32(5), cfg.Breaker.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.Breaker.Interval)
	assert.Equal(t, 60*time.Second, cfg.Breaker.Timeout)
	assert.InDelta(t, 0.8, cfg.Breaker.FailureRatio, 1e-9)
	assert.Equal(t, uint32(5), cfg.Breaker.MinRequests)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "city-flight-graph", cfg.Logging.ServiceName)

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT":            "3000",
		"SERVER_READ_TIMEOUT":    "30s",
		"SERVER_WRITE_TIMEOUT":   "30s",
		"TIMEOUT_OPERATION":      "2s",
		"GRAPH_DRIVER":           "memory",
		"NEO4J_URI":              "neo4j://graph:7687",
		"NEO4J_USERNAME":         "admin",
		"NEO4J_PASSWORD":         "secret",
		"NEO4J_DATABASE":         "flights",
		"NEO4J_MAX_POOL_SIZE":    "10",
		"NEO4J_CONNECT_ATTEMPTS": "2",
		"BREAKER_ENABLED":        "false",
		"BREAKER_FAILURE_RATIO":  "0.5",
		"METRICS_ENABLED":        "false",
		"LOG_LEVEL":              "debug",
		"LOG_FORMAT":             "console",
		"APP_ENV":                "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "2s", cfg.Timeouts.Operation.String())
	assert.Equal(t, "memory", cfg.Graph.Driver)
	assert.Equal(t, "neo4j://graph:7687", cfg.Graph.URI)
	assert.Equal(t, "admin", cfg.Graph.Username)
	assert.Equal(t, "secret", cfg.Graph.Password)
	assert.Equal(t, "flights", cfg.Graph.Database)
	assert.Equal(t, 10, cfg.Graph.MaxPoolSize)
	assert.Equal(t, 2, cfg.Graph.ConnectAttempts)
	assert.False(t, cfg.Breaker.Enabled)
	assert.InDelta(t, 0.5, cfg.Breaker.FailureRatio, 1e-9)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "neo4j", cfg.Graph.Driver, "default driver")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_PortRange tests port validation.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero operation timeout", "TIMEOUT_OPERATION", "0s", "TIMEOUT_OPERATION must be positive"},
		{"negative operation timeout", "TIMEOUT_OPERATION", "-1s", "TIMEOUT_OPERATION must be positive"},
		{"zero breaker timeout", "BREAKER_TIMEOUT", "0s", "BREAKER_TIMEOUT must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_GraphDriver tests driver selection validation.
func TestLoad_Validation_GraphDriver(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr bool
		errMsg  string
	}{
		{"neo4j", map[string]string{"GRAPH_DRIVER": "neo4j"}, false, ""},
		{"memory", map[string]string{"GRAPH_DRIVER": "memory"}, false, ""},
		{"memory ignores empty uri", map[string]string{"GRAPH_DRIVER": "memory", "NEO4J_URI": ""}, false, ""},
		{"unknown driver", map[string]string{"GRAPH_DRIVER": "postgres"}, true, "GRAPH_DRIVER must be one of"},
		{"zero connect attempts", map[string]string{"NEO4J_CONNECT_ATTEMPTS": "0"}, true, "NEO4J_CONNECT_ATTEMPTS must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_BreakerRatio tests the failure ratio bounds.
func TestLoad_Validation_BreakerRatio(t *testing.T) {
	tests := []struct {
		name    string
		ratio   string
		enabled string
		wantErr bool
	}{
		{"ratio one", "1", "true", false},
		{"ratio half", "0.5", "true", false},
		{"ratio zero", "0", "true", true},
		{"ratio above one", "1.5", "true", true},
		{"ratio ignored when disabled", "0", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{
				"BREAKER_FAILURE_RATIO": tt.ratio,
				"BREAKER_ENABLED":       tt.enabled,
			})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "BREAKER_FAILURE_RATIO")
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_MetricsPath tests that the metrics path is absolute.
func TestLoad_Validation_MetricsPath(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"METRICS_PATH": "metrics"})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_PATH must start with '/'")
	assert.Nil(t, cfg)
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"INFO", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			_, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"console", false},
		{"text", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			_, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		env     string
		wantErr bool
	}{
		{"development", false},
		{"staging", false},
		{"production", false},
		{"test", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			_, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestLoad_DurationParsing tests various duration formats.
func TestLoad_DurationParsing(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"SERVER_READ_TIMEOUT":  "1m30s",
		"SERVER_WRITE_TIMEOUT": "2m",
		"TIMEOUT_OPERATION":    "500ms",
		"BREAKER_INTERVAL":     "1m",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1m30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "2m0s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "500ms", cfg.Timeouts.Operation.String())
	assert.Equal(t, "1m0s", cfg.Breaker.Interval.String())
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
			assert.Equal(t, tt.env == "production", cfg.IsProduction())
		})
	}
}

func TestConfig_StoreConfig(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"NEO4J_URI":              "neo4j://db:7687",
		"NEO4J_USERNAME":         "svc",
		"NEO4J_PASSWORD":         "pw",
		"NEO4J_DATABASE":         "graph",
		"NEO4J_MAX_POOL_SIZE":    "7",
		"NEO4J_CONNECT_ATTEMPTS": "3",
	})

	cfg, err := Load()
	require.NoError(t, err)

	sc := cfg.StoreConfig()
	assert.Equal(t, "neo4j", sc.Driver)
	assert.Equal(t, "neo4j://db:7687", sc.Neo4j.URI)
	assert.Equal(t, "svc", sc.Neo4j.Username)
	assert.Equal(t, "pw", sc.Neo4j.Password)
	assert.Equal(t, "graph", sc.Neo4j.Database)
	assert.Equal(t, 7, sc.Neo4j.MaxConnectionPoolSize)
	assert.Equal(t, 3, sc.ConnectAttempts)
}

func TestConfig_BreakerSettings(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"BREAKER_MAX_REQUESTS":  "2",
		"BREAKER_MIN_REQUESTS":  "10",
		"BREAKER_FAILURE_RATIO": "0.6",
	})

	cfg, err := Load()
	require.NoError(t, err)

	bc := cfg.BreakerSettings()
	assert.True(t, bc.Enabled)
	assert.Equal(t, uint32(2), bc.MaxRequests)
	assert.Equal(t, uint32(10), bc.MinRequests)
	assert.InDelta(t, 0.6, bc.FailureRatio, 1e-9)
	assert.Equal(t, 30*time.Second, bc.Interval)
	assert.Equal(t, 60*time.Second, bc.Timeout)
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"TIMEOUT_OPERATION",
		"GRAPH_DRIVER",
		"NEO4J_URI",
		"NEO4J_USERNAME",
		"NEO4J_PASSWORD",
		"NEO4J_DATABASE",
		"NEO4J_MAX_POOL_SIZE",
		"NEO4J_CONNECT_ATTEMPTS",
		"BREAKER_ENABLED",
		"BREAKER_MAX_REQUESTS",
		"BREAKER_INTERVAL",
		"BREAKER_TIMEOUT",
		"BREAKER_FAILURE_RATIO",
		"BREAKER_MIN_REQUESTS",
		"METRICS_ENABLED",
		"METRICS_PATH",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"LOG_CALLER",
		"SERVICE_NAME",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
