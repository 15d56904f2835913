package config

import (
	"bytes"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads the YAML file at path into v. ${VAR} and $VAR references
// are expanded from the environment before decoding, so secrets can stay
// out of the file. Unknown fields are rejected.
func LoadYAML[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	return DecodeYAML(raw, v)
}

// DecodeYAML is LoadYAML for in-memory content.
func DecodeYAML[T any](raw []byte, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(raw)))))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Join(ErrParsingYAML, err)
	}
	return nil
}
