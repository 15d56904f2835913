// Package config loads application configuration.
//
// Environment configuration is parsed into tagged structs with
// github.com/caarlos0/env/v11. A .env file in the working directory is read
// once through github.com/joho/godotenv before the first parse, and every
// parsed type is cached for the lifetime of the process:
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// File configuration, such as the provider catalogue, is YAML decoded with
// gopkg.in/yaml.v3 after environment expansion:
//
//	var file providers.File
//	err := config.LoadYAML("providers.yaml", &file)
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile, ErrReadingFile or
// ErrParsingYAML and can be matched with errors.Is.
package config
