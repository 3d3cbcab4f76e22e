package codec

import (
	"github.com/google/uuid"

	"github.com/blockspacer/spotify-json/jsontext"
)

// UUID is the Codec[uuid.UUID] for the canonical hyphenated string form,
// grounded on google/uuid (the representation the rest of the domain stack
// in this corpus uses for opaque identifiers).
var UUID Codec[uuid.UUID] = uuidCodec{}

type uuidCodec struct{ AlwaysEncode[uuid.UUID] }

func (uuidCodec) Decode(dec *jsontext.Decoder) (uuid.UUID, error) {
	s, err := dec.ReadString()
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, err
	}
	return id, nil
}

func (uuidCodec) Encode(enc *jsontext.Encoder, v uuid.UUID) error {
	enc.AppendQuoted(v.String())
	return nil
}
