package rpc

import "testing"

func TestParams_String(t *testing.T) {
	p := Params{"audio": "QUJD", "size": 42}

	if v, ok := p.String("audio"); !ok || v != "QUJD" {
		t.Errorf("expected QUJD, got %q ok=%v", v, ok)
	}
	if _, ok := p.String("size"); ok {
		t.Error("expected non-string field to report ok=false")
	}
	if _, ok := p.String("missing"); ok {
		t.Error("expected missing field to report ok=false")
	}
}

func TestParams_StringOr(t *testing.T) {
	p := Params{
		"mime":   "  audio/wav  ",
		"blank":  "   ",
		"number": 7,
	}

	if v := p.StringOr("mime", "audio/webm"); v != "audio/wav" {
		t.Errorf("expected trimmed value, got %q", v)
	}
	if v := p.StringOr("blank", "audio/webm"); v != "audio/webm" {
		t.Errorf("expected fallback for blank value, got %q", v)
	}
	if v := p.StringOr("number", "audio/webm"); v != "audio/webm" {
		t.Errorf("expected fallback for non-string, got %q", v)
	}
	if v := p.StringOr("missing", "audio/webm"); v != "audio/webm" {
		t.Errorf("expected fallback for missing key, got %q", v)
	}
}

func TestParams_TrimmedString(t *testing.T) {
	p := Params{"language": " en "}

	if v, ok := p.TrimmedString("language"); !ok || v != "en" {
		t.Errorf("expected en, got %q ok=%v", v, ok)
	}
	if _, ok := p.TrimmedString("missing"); ok {
		t.Error("expected missing field to report ok=false")
	}
}
