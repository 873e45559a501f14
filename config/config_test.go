package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg, err := ProvideConfig()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(8080, cfg.Port)
	assert.Equal([]string{"*"}, cfg.AllowedOrigins)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal("treble", cfg.Clef)
	assert.Equal("4/4", cfg.TimeSignature)
	assert.Equal(":8080", cfg.Addr())
}

func TestReadsEnvironment(t *testing.T) {
	t.Setenv("CHORDTONE_PORT", "9000")
	t.Setenv("CHORDTONE_ALLOWED_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("CHORDTONE_FORMULAS_PATH", "/etc/chordtone/formulas.yaml")

	cfg, err := ProvideConfig()

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(9000, cfg.Port)
	assert.Equal([]string{"http://localhost:3000", "https://example.com"}, cfg.AllowedOrigins)
	assert.Equal("/etc/chordtone/formulas.yaml", cfg.FormulasPath)
}

func TestBadPort(t *testing.T) {
	t.Setenv("CHORDTONE_PORT", "eighty")

	_, err := ProvideConfig()
	assert.Error(t, err)
}
