package httpclient

import (
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// Response is the minimal result DTO: status code plus the fully drained
// body bytes. Immutable once constructed.
type Response struct {
	statusCode int
	body       []byte
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.statusCode }

// Body returns the raw body bytes.
func (r *Response) Body() []byte { return r.body }

// BodyString decodes the body as UTF-8. Invalid byte sequences pass
// through unreplaced rather than being substituted with U+FFFD.
func (r *Response) BodyString() string { return string(r.body) }

// BodyStringCharset decodes the body using the named charset
// (IANA/WHATWG name, e.g. "iso-8859-1" or "shift_jis").
func (r *Response) BodyStringCharset(name string) (string, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", fmt.Errorf("lookup charset %q: %w", name, err)
	}
	decoded, err := enc.NewDecoder().Bytes(r.body)
	if err != nil {
		return "", fmt.Errorf("decode body as %q: %w", name, err)
	}
	return string(decoded), nil
}
