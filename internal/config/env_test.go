package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysVariables(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env:env@db/profiles")
	t.Setenv("BCRYPT_COST", "5")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "postgres://env:env@db/profiles", c.DatabaseDSN)
	assert.Equal(t, 5, c.BcryptCost)
}

func TestParseEnv_InvalidCostIgnored(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("BCRYPT_COST", "not-a-number")

	c := &Config{}
	c.LoadDefaults()
	want := *c
	parseEnv(c)

	assert.Equal(t, want, *c)
}
