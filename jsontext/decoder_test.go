package jsontext

import "testing"

func TestPeekNext(t *testing.T) {
	d := NewDecoder([]byte("ab"))
	if c := d.Peek(); c != 'a' {
		t.Fatalf("Peek() = %q, want 'a'", c)
	}
	if c := d.Peek(); c != 'a' {
		t.Fatalf("Peek() should not advance, got %q", c)
	}
	c, err := d.Next("eof")
	if err != nil || c != 'a' {
		t.Fatalf("Next() = %q, %v", c, err)
	}
	c, err = d.Next("eof")
	if err != nil || c != 'b' {
		t.Fatalf("Next() = %q, %v", c, err)
	}
	if _, err := d.Next("eof"); err == nil {
		t.Fatalf("Next() at end should fail")
	}
	if c := d.Peek(); c != 0x00 {
		t.Fatalf("Peek() at end = %q, want 0x00", c)
	}
}

func TestSkipWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 3},
		{"\t\n\r x", 4},
		{"x", 0},
		{"        x", 8}, // exercises the 8-byte SWAR fast path boundary
		{"         \tx", 10},
	}
	for _, tt := range tests {
		d := NewDecoder([]byte(tt.in))
		d.SkipWhitespace()
		if d.pos != tt.want {
			t.Errorf("SkipWhitespace(%q): pos = %d, want %d", tt.in, d.pos, tt.want)
		}
	}
}

func TestSkipWhitespaceWithoutSWAR(t *testing.T) {
	old := hasSWAR
	hasSWAR = false
	defer func() { hasSWAR = old }()
	d := NewDecoder([]byte("        \t\n x"))
	d.SkipWhitespace()
	if d.pos != 11 {
		t.Fatalf("pos = %d, want 11", d.pos)
	}
}

func TestAdvancePastFour(t *testing.T) {
	d := NewDecoder([]byte("true"))
	if err := d.AdvancePastFour("true"); err != nil {
		t.Fatal(err)
	}
	d = NewDecoder([]byte("tru"))
	if err := d.AdvancePastFour("true"); err == nil {
		t.Fatal("expected error on short input")
	}
	d = NewDecoder([]byte("tRue"))
	if err := d.AdvancePastFour("true"); err == nil {
		t.Fatal("expected error on mismatch")
	}
}

func TestReadStringBasic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"abc"`, "abc"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb\rc"`, "a\tb\rc"},
		{`"A"`, "A"},
		{`"é"`, "é"},
	}
	for _, tt := range tests {
		d := NewDecoder([]byte(tt.in))
		got, err := d.ReadString()
		if err != nil {
			t.Errorf("ReadString(%s): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadString(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadStringErrors(t *testing.T) {
	tests := []struct {
		in      string
		wantMsg string
	}{
		{`"abc`, MsgUnterminatedString},
		{`"a\qb"`, MsgInvalidEscape},
		{`"\u00G1"`, MsgBadUnicodeEscape},
	}
	for _, tt := range tests {
		d := NewDecoder([]byte(tt.in))
		_, err := d.ReadString()
		if err == nil {
			t.Errorf("ReadString(%s): expected error", tt.in)
			continue
		}
		se, ok := err.(*SyntaxError)
		if !ok || se.Message != tt.wantMsg {
			t.Errorf("ReadString(%s) error = %v, want message %q", tt.in, err, tt.wantMsg)
		}
	}
}

func TestBadEscapeOffset(t *testing.T) {
	// `a\qb` — the 'q' sits at index 2.
	d := NewDecoder([]byte(`"a\qb"`))
	_, err := d.ReadString()
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Offset != 3 {
		t.Fatalf("offset = %d, want 3 (pointing at 'q')", se.Offset)
	}
}

func TestAdvancePastCommaSeparatedTrailingComma(t *testing.T) {
	d := NewDecoder([]byte(`{"x":1,}`))
	err := d.AdvancePastCommaSeparated('{', '}', func() error {
		if err := d.AdvancePastString(); err != nil {
			return err
		}
		d.SkipWhitespace()
		if err := d.AdvancePast(':'); err != nil {
			return err
		}
		d.SkipWhitespace()
		return d.SkipValue()
	})
	se, ok := err.(*SyntaxError)
	if !ok || se.Message != MsgUnexpectedInput {
		t.Fatalf("err = %v, want %q", err, MsgUnexpectedInput)
	}
	if se.Offset != 7 {
		t.Fatalf("offset = %d, want 7 (pointing at trailing '}')", se.Offset)
	}
}

func TestSkipValue(t *testing.T) {
	tests := []string{
		`null`, `true`, `false`, `123`, `-0.5e10`, `"str"`,
		`[1,2,3]`, `{"a":1,"b":[1,2,{"c":3}]}`, `[]`, `{}`,
	}
	for _, in := range tests {
		d := NewDecoder([]byte(in))
		if err := d.SkipValue(); err != nil {
			t.Errorf("SkipValue(%s): %v", in, err)
			continue
		}
		if d.Remaining() != 0 {
			t.Errorf("SkipValue(%s): remaining = %d, want 0", in, d.Remaining())
		}
	}
}

func TestSkipValueUnknownFieldTransparency(t *testing.T) {
	d := NewDecoder([]byte(`{"nested":[1,2,3]}`))
	if err := d.SkipValue(); err != nil {
		t.Fatal(err)
	}
}

func TestOffsetAccuracy(t *testing.T) {
	d := NewDecoder([]byte(`   x`))
	d.SkipWhitespace()
	if d.Offset(0) != 3 {
		t.Fatalf("Offset = %d, want 3", d.Offset(0))
	}
}

func TestReadRawNumber(t *testing.T) {
	tests := []string{"0", "-12", "3.14", "-0.5e10", "2E+5"}
	for _, in := range tests {
		d := NewDecoder([]byte(in))
		raw, err := d.ReadRawNumber()
		if err != nil {
			t.Errorf("ReadRawNumber(%s): %v", in, err)
			continue
		}
		if raw != in {
			t.Errorf("ReadRawNumber(%s) = %q", in, raw)
		}
	}
}

func TestReadBool(t *testing.T) {
	d := NewDecoder([]byte("true"))
	v, err := d.ReadBool()
	if err != nil || v != true {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	d = NewDecoder([]byte("false"))
	v, err = d.ReadBool()
	if err != nil || v != false {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	d = NewDecoder([]byte("nope"))
	if _, err := d.ReadBool(); err == nil {
		t.Fatal("expected error for non-boolean literal")
	}
}

func TestPeekIsNullAndAdvancePastNull(t *testing.T) {
	d := NewDecoder([]byte("null"))
	if !d.PeekIsNull() {
		t.Fatal("PeekIsNull() = false, want true")
	}
	if err := d.AdvancePastNull(); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", d.Remaining())
	}

	d = NewDecoder([]byte("123"))
	if d.PeekIsNull() {
		t.Fatal("PeekIsNull() = true, want false")
	}
}
