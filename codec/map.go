package codec

import "github.com/blockspacer/spotify-json/jsontext"

// Map builds a Codec[map[string]F] for a JSON object used as an
// arbitrary-key dictionary, as distinct from ObjectCodec's fixed schema.
func Map[F any](elem Codec[F]) Codec[map[string]F] {
	return mapCodec[F]{elem: elem}
}

type mapCodec[F any] struct {
	elem Codec[F]
	AlwaysEncode[map[string]F]
}

func (c mapCodec[F]) Decode(dec *jsontext.Decoder) (map[string]F, error) {
	out := make(map[string]F)
	err := dec.AdvancePastCommaSeparated('{', '}', func() error {
		key, err := dec.ReadString()
		if err != nil {
			return err
		}
		dec.SkipWhitespace()
		if err := dec.AdvancePast(':'); err != nil {
			return err
		}
		dec.SkipWhitespace()
		v, err := c.elem.Decode(dec)
		if err != nil {
			return err
		}
		out[key] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c mapCodec[F]) Encode(enc *jsontext.Encoder, v map[string]F) error {
	enc.Append('{')
	for k, e := range v {
		if !c.elem.ShouldEncode(e) {
			continue
		}
		enc.AppendBytes(jsontext.AppendQuotedKeyColon(nil, k))
		if err := c.elem.Encode(enc, e); err != nil {
			return err
		}
		enc.Append(',')
	}
	enc.AppendOrReplace(',', '}')
	return nil
}
