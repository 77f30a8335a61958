package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 bytes", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes stop before the limit", "日本語のテストの名前", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"mixed printable and control", "a\x00b\x01c\x02d", "abcd"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"invalid utf8 dropped", "ab\xffcd", "abcd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
		{"xterm-kitty", "xterm-kitty", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSaveKeyIsFileSafe(t *testing.T) {
	cases := []struct {
		user, prefix string
	}{
		{"alice", "DA_SAVE_alice_"},
		{"bob-2_x", "DA_SAVE_bob-2_x_"},
		{"../etc", "DA_SAVE____etc_"},
		{"a b", "DA_SAVE_a_b_"},
		{"ñ", "DA_SAVE___"},
	}
	for _, tc := range cases {
		got := saveKey("DA_SAVE", tc.user)
		if !strings.HasPrefix(got, tc.prefix) {
			t.Errorf("saveKey(%q) = %q, want prefix %q", tc.user, got, tc.prefix)
		}
		if len(got) != len(tc.prefix)+12 {
			t.Errorf("saveKey(%q) = %q, want a 12-char suffix", tc.user, got)
		}
		if strings.ContainsAny(got, "/\\. ") {
			t.Errorf("saveKey(%q) = %q contains path characters", tc.user, got)
		}
	}
}

func TestSaveKeySeparatesLookalikeUsers(t *testing.T) {
	pairs := [][2]string{
		{"a.b", "a_b"},
		{"a b", "a/b"},
		{"ThisIsAVeryLongUsername1", "ThisIsAVeryLongUsername2"},
	}
	for _, p := range pairs {
		if a, b := saveKey("DA_SAVE", p[0]), saveKey("DA_SAVE", p[1]); a == b {
			t.Errorf("%q and %q share slot %q", p[0], p[1], a)
		}
	}
	if saveKey("DA_SAVE", "alice") != saveKey("DA_SAVE", "alice") {
		t.Error("saveKey is not stable for the same user")
	}
}

func TestCatalogForFallsBack(t *testing.T) {
	cat, err := catalogFor("es_ES.UTF-8", "en")
	if err != nil || cat.Language() != "es" {
		t.Fatalf("catalogFor(es) = %v, %v", cat, err)
	}
	cat, err = catalogFor("C.UTF-8", "en")
	if err != nil || cat.Language() != "en" {
		t.Fatalf("catalogFor(C) = %v, %v; want en fallback", cat, err)
	}
	if _, err := catalogFor("C", "xx"); err == nil {
		t.Error("want error when neither language has a catalog")
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first, err := loadOrCreateHostKey(zerolog.Nop(), path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(zerolog.Nop(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, b := first.PublicKey().Marshal(), second.PublicKey().Marshal()
	if string(a) != string(b) {
		t.Error("reloaded key differs from the generated one")
	}
}
