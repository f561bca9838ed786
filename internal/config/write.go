package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// generatedHeader starts every file written by Config.Write.
const generatedHeader = "# reelcat configuration, generated by `reelcat config init`\n\n"

// WriteDefault writes the commented example config to path, creating
// parent directories as needed.
func WriteDefault(path string) error {
	return writeFile(path, []byte(defaultConfig))
}

// Write encodes c as TOML and writes it to path, creating parent
// directories as needed. Values are written literally; no environment
// references are emitted.
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
