package config

import (
	"fmt"
	"os"

	"mt-bridge/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Defaults applied when the YAML file leaves optional knobs unset.
const (
	DefaultCommandTimeoutSeconds = 5
	DefaultQueueCapacity         = 1000
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

func (c *Config) applyDefaults() {
	if c.Broker.CommandTimeoutSeconds == 0 {
		c.Broker.CommandTimeoutSeconds = DefaultCommandTimeoutSeconds
	}
	if c.Broker.QueueCapacity == 0 {
		c.Broker.QueueCapacity = DefaultQueueCapacity
	}
	if c.Zmq.Protocol == "" {
		c.Zmq.Protocol = "tcp"
	}
	if c.Zmq.Host == "" {
		c.Zmq.Host = "localhost"
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	// Validate App configuration (Flattened)
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Validate Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort <= 1024 || c.GrpcPort > 65535 {
		return fmt.Errorf("invalid gRPC port number: %d (must be between 1025 and 65535)", c.GrpcPort)
	}

	// Validate ZMQ configuration
	for _, p := range []int{c.Zmq.PushPort, c.Zmq.PullPort, c.Zmq.SubPort} {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("invalid zmq port number: %d", p)
		}
	}
	if c.Zmq.PushPort == c.Zmq.PullPort || c.Zmq.PullPort == c.Zmq.SubPort || c.Zmq.PushPort == c.Zmq.SubPort {
		return fmt.Errorf("zmq push/pull/sub ports must be distinct")
	}

	// Validate Broker configuration
	if c.Broker.CommandTimeoutSeconds <= 0 {
		return fmt.Errorf("command timeout must be greater than 0")
	}
	if c.Broker.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be greater than 0")
	}

	// Validate Storage configuration
	if c.Storage.Enabled {
		if c.Storage.DBType == "" {
			return fmt.Errorf("database type cannot be empty")
		}
		if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
			return fmt.Errorf("database path cannot be empty for sqlite")
		}
		if c.Storage.DBType == "postgres" && c.Storage.DBConnectionString == "" {
			return fmt.Errorf("connection string cannot be empty for postgres")
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// PushEndpoint returns the terminal's PUSH socket address.
func (c *Config) PushEndpoint() string {
	return fmt.Sprintf("%s://%s:%d", c.Zmq.Protocol, c.Zmq.Host, c.Zmq.PushPort)
}

// PullEndpoint returns the terminal's PULL socket address.
func (c *Config) PullEndpoint() string {
	return fmt.Sprintf("%s://%s:%d", c.Zmq.Protocol, c.Zmq.Host, c.Zmq.PullPort)
}

// SubEndpoint returns the terminal's SUB socket address.
func (c *Config) SubEndpoint() string {
	return fmt.Sprintf("%s://%s:%d", c.Zmq.Protocol, c.Zmq.Host, c.Zmq.SubPort)
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
