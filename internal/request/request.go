package request

import (
	"fmt"

	"github.com/Brownie44l1/reqparse/internal/headers"
)

// Request is the parse result. Every string field and every header entry is
// a view into the input buffer handed to Start; the Request stays valid only
// as long as the caller keeps that buffer alive and unmodified.
type Request struct {
	Method        string
	RequestTarget string
	HttpVersion   string
	Headers       *headers.Headers
	Body          []byte
}

func newRequest() *Request {
	return &Request{
		Headers: headers.New(),
	}
}

func (r *Request) String() string {
	return fmt.Sprintf("%s %s %s (%d headers, %d byte body)",
		r.Method, r.RequestTarget, r.HttpVersion, r.Headers.Len(), len(r.Body))
}

// Parse drives a fresh parser through every state and returns the finished
// Request. The first failing transition abandons the whole parse.
func Parse(data []byte) (*Request, error) {
	atURI, err := Start(data).Advance()
	if err != nil {
		return nil, err
	}

	atHeaders, err := atURI.Advance().Advance()
	if err != nil {
		return nil, err
	}

	atBody, err := atHeaders.Advance()
	if err != nil {
		return nil, err
	}

	return atBody.Advance(), nil
}
