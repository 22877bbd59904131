package httpclient

import "net/http"

// Sent describes an outbound request as it was actually written to the
// wire, engine-added default headers included. Body is nil when the
// engine's request body could not be replayed.
type Sent struct {
	URL    string
	Method string
	Header http.Header
	Body   []byte
}

// Callback receives the outcome of an asynchronous call. Exactly one of
// the two methods fires per call, on an engine goroutine, never on the
// caller's. Implementations must be safe for concurrent use: completions
// of concurrent calls arrive in any order, possibly interleaved.
type Callback interface {
	OnResponse(sent Sent, resp *Response)
	OnError(sent Sent, err error)
}

// CallbackFuncs adapts plain functions to the Callback interface. Nil
// functions are skipped.
type CallbackFuncs struct {
	Response func(sent Sent, resp *Response)
	Error    func(sent Sent, err error)
}

func (c CallbackFuncs) OnResponse(sent Sent, resp *Response) {
	if c.Response != nil {
		c.Response(sent, resp)
	}
}

func (c CallbackFuncs) OnError(sent Sent, err error) {
	if c.Error != nil {
		c.Error(sent, err)
	}
}

// nopCallback stands in for a nil callback and discards both branches.
type nopCallback struct{}

func (nopCallback) OnResponse(Sent, *Response) {}
func (nopCallback) OnError(Sent, error)        {}
