package token

import "testing"

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec("test-secret", "abcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

func TestGenerateValidates(t *testing.T) {
	c := newTestCodec(t)
	for i := 0; i < 50; i++ {
		tok, err := c.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(tok) != 32 {
			t.Fatalf("token length = %d, want 32", len(tok))
		}
		if !c.Validate(tok) {
			t.Fatalf("generated token failed validation: %q", tok)
		}
	}
}

func TestValidateRejectsTampering(t *testing.T) {
	c := newTestCodec(t)
	tok, err := c.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	cases := map[string]string{
		"empty":            "",
		"too short":        tok[:31],
		"too long":         tok + "a",
		"flipped body":     flip(tok, 0),
		"flipped checksum": flip(tok, len(tok)-1),
		"outside alphabet": "!" + tok[1:],
	}
	for name, bad := range cases {
		if c.Validate(bad) {
			t.Errorf("%s: Validate(%q) = true, want false", name, bad)
		}
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	c := newTestCodec(t)
	other, err := NewCodec("other-secret", "abcdefghijklmnopqrstuvwxyz0123456789", 32)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	tok, err := other.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c.Validate(tok) {
		t.Fatal("token minted with another secret validated")
	}
}

func TestNewCodecRejectsBadConfig(t *testing.T) {
	if _, err := NewCodec("s", "a", 32); err != ErrShortAlphabet {
		t.Errorf("short alphabet: err = %v, want ErrShortAlphabet", err)
	}
	if _, err := NewCodec("s", "abc", 4); err != ErrShortLength {
		t.Errorf("short length: err = %v, want ErrShortLength", err)
	}
}

func flip(s string, i int) string {
	b := []byte(s)
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}
	return string(b)
}
