package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tawashy/next-auth/pkg/config"
)

type yamlConfig struct {
	Name   string   `yaml:"name"`
	Secret string   `yaml:"secret"`
	Hosts  []string `yaml:"hosts"`
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("CONFIG_TEST_SECRET", "s3cret")

	var cfg yamlConfig
	require.NoError(t, config.LoadYAML("testdata/valid.yaml", &cfg))

	assert.Equal(t, "gateway", cfg.Name)
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Hosts)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Parallel()

	var cfg yamlConfig
	assert.ErrorIs(t, config.LoadYAML("testdata/missing.yaml", &cfg), config.ErrReadingFile)
	assert.ErrorIs(t, config.LoadYAML("testdata/unknown.yaml", &cfg), config.ErrParsingYAML)
	assert.ErrorIs(t, config.LoadYAML[yamlConfig]("testdata/valid.yaml", nil), config.ErrNilPointer)
}

func TestDecodeYAML_UnsetVariableIsEmpty(t *testing.T) {
	t.Parallel()

	var cfg yamlConfig
	require.NoError(t, config.DecodeYAML([]byte("name: ${CONFIG_TEST_NEVER_SET}\n"), &cfg))
	assert.Empty(t, cfg.Name)
}
