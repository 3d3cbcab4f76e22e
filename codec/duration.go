package codec

import (
	"time"

	"github.com/blockspacer/spotify-json/jsontext"
)

// DurationSeconds is the Codec[time.Duration] that encodes as a JSON number
// of fractional seconds, the representation the rest of the domain stack
// (metrics, scheduling) in this corpus settles on.
var DurationSeconds Codec[time.Duration] = durationSecondsCodec{}

type durationSecondsCodec struct{ AlwaysEncode[time.Duration] }

func (durationSecondsCodec) Decode(dec *jsontext.Decoder) (time.Duration, error) {
	f, err := Float[float64]().Decode(dec)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

func (durationSecondsCodec) Encode(enc *jsontext.Encoder, v time.Duration) error {
	return Float[float64]().Encode(enc, v.Seconds())
}
