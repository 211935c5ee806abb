package setup

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret_Length(t *testing.T) {
	s, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, s, SecretLen)

	raw, err := hex.DecodeString(s)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestGenerateSecret_Unique(t *testing.T) {
	// Two draws from a 256-bit space colliding means the source is broken.
	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerateSecret_PassesManualEntryValidator(t *testing.T) {
	s, err := GenerateSecret()
	require.NoError(t, err)
	assert.NoError(t, MinLen(32)(s))
}
