package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"portal:s3cret@tcp(db.internal:3306)/wholesale?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn("portal", "s3cret", "db.internal", "3306", "wholesale"))
}

func TestDSNWithoutPassword(t *testing.T) {
	assert.Equal(t,
		"root@tcp(localhost:3306)/wholesale?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn("root", "", "localhost", "3306", "wholesale"))
}
