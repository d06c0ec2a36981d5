package config

import (
	"encoding/json"
	"os"

	"github.com/linecard/echo/internal/util"
)

const (
	EnvFunctionName = "ECHO_FUNCTION_NAME"
	EnvListen       = "ECHO_LISTEN"
	EnvLwaPort      = "AWS_LWA_PORT"
	EnvLogLevel     = "LOG_LEVEL"
	EnvOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

const DefaultListen = "0.0.0.0:8081"

type Function struct {
	Name string
}

type Httproxy struct {
	Listen string
}

type Telemetry struct {
	LogLevel     string
	OtlpEndpoint string
}

type Config struct {
	Function  Function
	Httproxy  Httproxy
	Telemetry Telemetry
	InLambda  bool
}

// FromEnv resolves configuration from the process environment.
func FromEnv() Config {
	return Config{
		Function: Function{
			Name: os.Getenv(EnvFunctionName),
		},
		Httproxy: Httproxy{
			Listen: listen(),
		},
		Telemetry: Telemetry{
			LogLevel:     util.ParseLogLevel(os.Getenv(EnvLogLevel)).String(),
			OtlpEndpoint: os.Getenv(EnvOtelEndpoint),
		},
		InLambda: util.InLambda(),
	}
}

func listen() string {
	if value, exists := os.LookupEnv(EnvListen); exists && value != "" {
		return value
	}

	if value, exists := os.LookupEnv(EnvLwaPort); exists && value != "" {
		return "0.0.0.0:" + value
	}

	return DefaultListen
}

func (c Config) Json() (string, error) {
	cJson, err := json.Marshal(c)
	if err != nil {
		return "", err
	}

	return string(cJson), nil
}
