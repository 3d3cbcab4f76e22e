package codec_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/spotify-json/codec"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	s := encodeString(t, codec.UUID, id)
	assert.Equal(t, `"123e4567-e89b-12d3-a456-426614174000"`, s)

	v, err := decodeString(t, codec.UUID, s)
	require.NoError(t, err)
	assert.Equal(t, id, v)
}

func TestUUIDRejectsMalformed(t *testing.T) {
	_, err := decodeString(t, codec.UUID, `"not-a-uuid"`)
	assert.Error(t, err)
}
