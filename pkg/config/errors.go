package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrNilPointer is returned when a nil pointer is provided to a loader.
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingFile is returned when a YAML configuration file cannot be read.
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingYAML is returned when a YAML configuration file is malformed.
	ErrParsingYAML = errors.New("failed to parse yaml config")
)
