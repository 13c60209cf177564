package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeSeqToken(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeSeqToken(createdAt, 42)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, seq, err := DecodeSeqToken(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at should match after decode")
	assert.Equal(t, int64(42), seq)

	// Non-UTC input comes back as the same instant.
	local := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))
	decodedLocal, _, err := DecodeSeqToken(EncodeSeqToken(local, 1))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedLocal))
}

func TestDecodeSeqTokenError(t *testing.T) {
	_, _, err := DecodeSeqToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeSeqToken(base64.URLEncoding.EncodeToString([]byte("no-separator")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeSeqToken(base64.URLEncoding.EncodeToString([]byte("not-a-time|3")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")

	_, _, err = DecodeSeqToken(base64.URLEncoding.EncodeToString([]byte("2024-01-01T00:00:00Z|x")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seq parse")
}
