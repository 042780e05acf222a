package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	GrpcHost string         `yaml:"grpc_host"`
	GrpcPort int            `yaml:"grpc_port"`
	Zmq      MZmqConfig     `yaml:"zmq"`
	Broker   MBrokerConfig  `yaml:"broker"`
	Storage  MStorageConfig `yaml:"storage"`
}

type MZmqConfig struct {
	Protocol string `yaml:"protocol"`
	Host     string `yaml:"host"`
	PushPort int    `yaml:"push_port"`
	PullPort int    `yaml:"pull_port"`
	SubPort  int    `yaml:"sub_port"`
	UseMock  bool   `yaml:"use_mock"`
}

type MBrokerConfig struct {
	CommandTimeoutSeconds int `yaml:"command_timeout_seconds"`
	QueueCapacity         int `yaml:"queue_capacity"`
}

type MStorageConfig struct {
	Enabled            bool   `yaml:"enabled"`
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
}
