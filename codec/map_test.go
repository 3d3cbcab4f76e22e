package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockspacer/spotify-json/codec"
)

func TestMapRoundTrip(t *testing.T) {
	c := codec.Map(codec.Int[int]())
	v, err := decodeString(t, c, `{"a":1,"b":2}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, v)
}

func TestMapSingleKeyEncode(t *testing.T) {
	c := codec.Map(codec.Int[int]())
	assert.Equal(t, `{"only":1}`, encodeString(t, c, map[string]int{"only": 1}))
}

func TestMapEmpty(t *testing.T) {
	c := codec.Map(codec.Int[int]())
	v, err := decodeString(t, c, `{}`)
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, `{}`, encodeString(t, c, v))
}
