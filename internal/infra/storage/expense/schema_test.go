package expense

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationPath = "../../../../migrations/001_init.sql"

// Сумма расхода строго положительна
func TestSchema_AmountMustBePositive(t *testing.T) {
	raw, err := os.ReadFile(migrationPath)
	require.NoError(t, err)

	amount := regexp.MustCompile(`(?m)^\s*amount\s+NUMERIC\(12, 2\) NOT NULL CHECK \(amount > 0\),$`)
	assert.Regexp(t, amount, string(raw))
}
