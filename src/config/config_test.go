package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validYAML = `
name: "mt-bridge"
host: "0.0.0.0"
port: 8080
log_level: "INFO"
grpc_host: "0.0.0.0"
grpc_port: 50051
zmq:
  push_port: 32768
  pull_port: 32769
  sub_port: 32770
  use_mock: true
broker:
  command_timeout_seconds: 5
  queue_capacity: 1000
`

func TestNewConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(writeConfigFile(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "mt-bridge", cfg.Name)
	assert.Equal(t, 50051, cfg.GrpcPort)
	assert.True(t, cfg.Zmq.UseMock)
	assert.Equal(t, 5, cfg.Broker.CommandTimeoutSeconds)
	assert.Equal(t, 1000, cfg.Broker.QueueCapacity)
}

func TestNewConfig_AppliesDefaults(t *testing.T) {
	t.Parallel()

	yaml := `
name: "mt-bridge"
host: "0.0.0.0"
port: 8080
grpc_port: 50051
zmq:
  push_port: 32768
  pull_port: 32769
  sub_port: 32770
`
	cfg, err := NewConfig(writeConfigFile(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, DefaultCommandTimeoutSeconds, cfg.Broker.CommandTimeoutSeconds)
	assert.Equal(t, DefaultQueueCapacity, cfg.Broker.QueueCapacity)
	assert.Equal(t, "tcp", cfg.Zmq.Protocol)
	assert.Equal(t, "localhost", cfg.Zmq.Host)
}

func TestNewConfig_Endpoints(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(writeConfigFile(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "tcp://localhost:32768", cfg.PushEndpoint())
	assert.Equal(t, "tcp://localhost:32769", cfg.PullEndpoint())
	assert.Equal(t, "tcp://localhost:32770", cfg.SubEndpoint())
}

func TestNewConfig_ValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{
			"missing name",
			`
host: "0.0.0.0"
port: 8080
grpc_port: 50051
zmq: {push_port: 32768, pull_port: 32769, sub_port: 32770}
`,
		},
		{
			"bad server port",
			`
name: "x"
host: "0.0.0.0"
port: 80
grpc_port: 50051
zmq: {push_port: 32768, pull_port: 32769, sub_port: 32770}
`,
		},
		{
			"colliding zmq ports",
			`
name: "x"
host: "0.0.0.0"
port: 8080
grpc_port: 50051
zmq: {push_port: 32768, pull_port: 32768, sub_port: 32770}
`,
		},
		{
			"storage enabled without sqlite path",
			`
name: "x"
host: "0.0.0.0"
port: 8080
grpc_port: 50051
zmq: {push_port: 32768, pull_port: 32769, sub_port: 32770}
storage: {enabled: true, db_type: "sqlite"}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfigFile(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_FileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(writeConfigFile(t, validYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, cfg.Save(path))

	reloaded, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.MConfig, reloaded.MConfig)
}
