package slug_test

import (
	"strings"
	"testing"

	"github.com/isipark/siteapi/pkg/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Buderus Logamax Plus GB172", "buderus-logamax-plus-gb172"},
		{"  Trimmed   Name  ", "trimmed-name"},
		{"Hello, World!", "hello-world"},
		{"snake_case_name", "snake-case-name"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER CASE", "upper-case"},
		{"multi    space", "multi-space"},
		{"trailing-", "trailing"},
		{"100% Original", "100-original"},
		{"", ""},
		{"!!!", ""},
	}

	for _, c := range cases {
		if got := slug.Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeFoldedTurkish(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kombi Bakımı", "kombi-bakimi"},
		{"Doğalgaz Tesisatı", "dogalgaz-tesisati"},
		{"Klima Montajı ve Söküm", "klima-montaji-ve-sokum"},
		{"Güneş Enerjisi Sistemleri", "gunes-enerjisi-sistemleri"},
		{"ISITMA ÇÖZÜMLERİ", "isitma-cozumleri"},
		{"Petek Temizliği", "petek-temizligi"},
	}

	for _, c := range cases {
		if got := slug.MakeFolded(c.in); got != c.want {
			t.Errorf("MakeFolded(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	a := slug.MakeFolded("Kombi Bakımı")
	b := slug.MakeFolded("Kombi Bakımı")
	if a != b {
		t.Errorf("slug not deterministic: %q vs %q", a, b)
	}
}

func TestSlugCharset(t *testing.T) {
	got := slug.MakeFolded("  Çift -- Kademeli % Yoğuşmalı!  ")
	if got == "" {
		t.Fatal("expected non-empty slug")
	}
	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Errorf("slug %q has leading/trailing hyphen", got)
	}
	for _, r := range got {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		if !valid {
			t.Errorf("slug %q contains invalid rune %q", got, r)
		}
	}
}

func TestOrFallback(t *testing.T) {
	if got := slug.OrFallback("kombi-bakimi", "service"); got != "kombi-bakimi" {
		t.Errorf("OrFallback kept slug: got %q", got)
	}

	got := slug.OrFallback("", "service")
	if !strings.HasPrefix(got, "service-") {
		t.Errorf("fallback %q missing prefix", got)
	}
	if len(got) <= len("service-") {
		t.Errorf("fallback %q missing timestamp", got)
	}
}
