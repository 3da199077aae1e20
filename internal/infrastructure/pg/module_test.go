package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "calc",
		Password: "secret",
		DBName:   "opscalc",
		SSLMode:  "require",
	}
	assert.Equal(t, "host=db port=5432 user=calc password=secret dbname=opscalc sslmode=require", cfg.DSN())
}
