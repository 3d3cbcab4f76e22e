package codec

// Pointer builds a Codec[*F] for a plain pointer used as the optional
// wrapper: nil means absent, a non-nil pointer carries the decoded value.
// This is the common case of NewOptional, specialized for *F.
func Pointer[F any](inner Codec[F]) Codec[*F] {
	return NewOptional[*F, F](
		inner,
		func(p *F) bool { return p != nil },
		func(p *F) F { return *p },
		func() *F { return nil },
		func(v F) *F { return &v },
	)
}
