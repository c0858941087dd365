package util

import "testing"

func TestContentHash(t *testing.T) {
	data := []byte("%PDF-1.3 study")
	got := ContentHash(data)
	if got != ContentHash(data) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if got == ContentHash([]byte("other")) {
		t.Fatalf("expected distinct hashes")
	}
}

func TestCheckFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: " 1700000000.pdf ", want: "1700000000.pdf", ok: true},
		{in: "", ok: false},
		{in: "../x.pdf", ok: false},
		{in: "a/b.pdf", ok: false},
		{in: `a\b.pdf`, ok: false},
		{in: "..pdf", ok: false},
	}
	for _, tt := range tests {
		got, err := CheckFileName(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Fatalf("CheckFileName(%q) = %q, %v", tt.in, got, err)
			}
			continue
		}
		if err == nil {
			t.Fatalf("CheckFileName(%q) expected error", tt.in)
		}
	}
}
