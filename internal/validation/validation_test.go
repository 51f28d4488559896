package validation

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRequired(t *testing.T) {
	errs := Errors{}
	errs.Required("name", "  ")
	errs.Required("title", "ok")

	if _, ok := errs["name"]; !ok {
		t.Fatalf("expected name error, got %v", errs)
	}
	if _, ok := errs["title"]; ok {
		t.Fatalf("unexpected title error: %v", errs)
	}
}

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"user@example.com": true,
		"not-an-email":     false,
		"":                 true, // emptiness is Required's job
	}
	for value, valid := range cases {
		errs := Errors{}
		errs.Email("email", value)
		if valid != errs.Empty() {
			t.Fatalf("Email(%q): expected valid=%v, errs=%v", value, valid, errs)
		}
	}
}

func TestURL(t *testing.T) {
	cases := map[string]bool{
		"https://example.com/repo": true,
		"http://localhost:3000":    true,
		"not a url":                false,
		"/relative/path":           false,
		"":                         true,
	}
	for value, valid := range cases {
		errs := Errors{}
		errs.URL("link", value)
		if valid != errs.Empty() {
			t.Fatalf("URL(%q): expected valid=%v, errs=%v", value, valid, errs)
		}
	}
}

func TestMaxLenCountsRunes(t *testing.T) {
	errs := Errors{}
	errs.MaxLen("message", strings.Repeat("ä", 5), 5)
	if !errs.Empty() {
		t.Fatalf("expected 5 runes within limit 5, got %v", errs)
	}

	errs = Errors{}
	errs.MaxLen("message", strings.Repeat("ä", 6), 5)
	if errs.Empty() {
		t.Fatalf("expected 6 runes over limit 5")
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"Language", "Framework"}

	errs := Errors{}
	errs.OneOf("category", "Framework", allowed)
	if !errs.Empty() {
		t.Fatalf("expected Framework accepted, got %v", errs)
	}

	errs = Errors{}
	errs.OneOf("category", "framework", allowed)
	if errs.Empty() {
		t.Fatalf("expected case-sensitive rejection")
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst []string
	errs := Errors{}
	if !errs.DecodeJSON("tech_stack", json.RawMessage(`["Go","Redis"]`), &dst) {
		t.Fatalf("expected decode success, errs=%v", errs)
	}
	if len(dst) != 2 {
		t.Fatalf("unexpected decode result: %v", dst)
	}

	errs = Errors{}
	if errs.DecodeJSON("tech_stack", json.RawMessage(`{"not":"an array"}`), &dst) {
		t.Fatalf("expected decode failure")
	}
	if _, ok := errs["tech_stack"]; !ok {
		t.Fatalf("expected tech_stack error, got %v", errs)
	}
}

func TestDecodeString(t *testing.T) {
	errs := Errors{}
	value, ok := errs.DecodeString("name", json.RawMessage(`"Go"`))
	if !ok || value == nil || *value != "Go" {
		t.Fatalf("expected decoded string, got value=%v ok=%v errs=%v", value, ok, errs)
	}

	// Absent and null both decode to nil without an error.
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		errs = Errors{}
		value, ok = errs.DecodeString("name", raw)
		if !ok || value != nil || !errs.Empty() {
			t.Fatalf("DecodeString(%q): expected nil ok, got value=%v ok=%v errs=%v", raw, value, ok, errs)
		}
	}

	errs = Errors{}
	if _, ok = errs.DecodeString("name", json.RawMessage(`42`)); ok {
		t.Fatalf("expected type failure")
	}
	if _, found := errs["name"]; !found {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestDecodeInt(t *testing.T) {
	errs := Errors{}
	value, ok := errs.DecodeInt("level", json.RawMessage(`80`))
	if !ok || value == nil || *value != 80 {
		t.Fatalf("expected decoded int, got value=%v ok=%v errs=%v", value, ok, errs)
	}

	for _, raw := range []json.RawMessage{json.RawMessage(`"eighty"`), json.RawMessage(`80.5`)} {
		errs = Errors{}
		if _, ok = errs.DecodeInt("level", raw); ok {
			t.Fatalf("DecodeInt(%s): expected type failure", raw)
		}
		if _, found := errs["level"]; !found {
			t.Fatalf("expected level error, got %v", errs)
		}
	}
}

func TestDecodeBool(t *testing.T) {
	errs := Errors{}
	value, ok := errs.DecodeBool("is_featured", json.RawMessage(`true`))
	if !ok || value == nil || !*value {
		t.Fatalf("expected decoded bool, got value=%v ok=%v errs=%v", value, ok, errs)
	}

	errs = Errors{}
	if _, ok = errs.DecodeBool("is_featured", json.RawMessage(`"yes"`)); ok {
		t.Fatalf("expected type failure")
	}
	if _, found := errs["is_featured"]; !found {
		t.Fatalf("expected is_featured error, got %v", errs)
	}
}

func TestAddAccumulatesPerField(t *testing.T) {
	errs := Errors{}
	errs.Add("email", "first")
	errs.Add("email", "second")
	if len(errs["email"]) != 2 {
		t.Fatalf("expected two reasons, got %v", errs["email"])
	}
}
