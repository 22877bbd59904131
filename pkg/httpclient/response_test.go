package httpclient

import "testing"

func TestBodyStringUTF8(t *testing.T) {
	r := &Response{statusCode: 200, body: []byte("héllo, 世界")}
	if got := r.BodyString(); got != "héllo, 世界" {
		t.Fatalf("BodyString = %q", got)
	}
}

func TestBodyStringKeepsInvalidUTF8(t *testing.T) {
	raw := []byte{0xFF, 'a', 0xFE}
	r := &Response{statusCode: 200, body: raw}
	if got := r.BodyString(); got != string(raw) {
		t.Fatalf("BodyString = %q, want bytes preserved as %q", got, raw)
	}
}

func TestBodyStringCharset(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		body    []byte
		want    string
	}{
		{name: "ascii via utf-8", charset: "utf-8", body: []byte("plain"), want: "plain"},
		{name: "multibyte via utf-8", charset: "utf-8", body: []byte("世界"), want: "世界"},
		{name: "latin1 e acute", charset: "iso-8859-1", body: []byte{0xE9}, want: "é"},
		{name: "latin1 mixed", charset: "iso-8859-1", body: []byte{'c', 'a', 'f', 0xE9}, want: "café"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := &Response{statusCode: 200, body: tc.body}
			got, err := r.BodyStringCharset(tc.charset)
			if err != nil {
				t.Fatalf("BodyStringCharset(%q): %v", tc.charset, err)
			}
			if got != tc.want {
				t.Fatalf("decoded = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBodyStringCharsetUnknown(t *testing.T) {
	r := &Response{statusCode: 200, body: []byte("x")}
	if _, err := r.BodyStringCharset("no-such-charset"); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}

func TestResponseAccessors(t *testing.T) {
	r := &Response{statusCode: 404, body: []byte("gone")}
	if r.StatusCode() != 404 {
		t.Fatalf("StatusCode = %d", r.StatusCode())
	}
	if string(r.Body()) != "gone" {
		t.Fatalf("Body = %q", r.Body())
	}
}
