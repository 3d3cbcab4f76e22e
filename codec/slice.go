package codec

import "github.com/blockspacer/spotify-json/jsontext"

// Slice builds a Codec[[]F] for a JSON array of homogeneous elements.
func Slice[F any](elem Codec[F]) Codec[[]F] {
	return sliceCodec[F]{elem: elem}
}

type sliceCodec[F any] struct {
	elem Codec[F]
	AlwaysEncode[[]F]
}

func (c sliceCodec[F]) Decode(dec *jsontext.Decoder) ([]F, error) {
	var out []F
	err := dec.AdvancePastCommaSeparated('[', ']', func() error {
		dec.SkipWhitespace()
		v, err := c.elem.Decode(dec)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c sliceCodec[F]) Encode(enc *jsontext.Encoder, v []F) error {
	enc.Append('[')
	for _, e := range v {
		if !c.elem.ShouldEncode(e) {
			continue
		}
		if err := c.elem.Encode(enc, e); err != nil {
			return err
		}
		enc.Append(',')
	}
	enc.AppendOrReplace(',', ']')
	return nil
}
