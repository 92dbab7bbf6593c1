package request

import (
	"bytes"
	"fmt"

	"github.com/indigo-web/utils/uf"
)

// parserState tracks which grammar position the parser sits at. Each Advance
// call checks it before doing any work, so a state value that was already
// consumed (or obtained out of order) cannot silently re-parse.
type parserState int

const (
	stateMethod parserState = iota
	stateURI
	stateVersion
	stateHeaders
	stateBody
	stateDone
	stateFailed
)

func (s parserState) String() string {
	switch s {
	case stateMethod:
		return "Method"
	case stateURI:
		return "URI"
	case stateVersion:
		return "Version"
	case stateHeaders:
		return "Headers"
	case stateBody:
		return "Body"
	case stateDone:
		return "Done"
	case stateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("parserState(%d)", int(s))
	}
}

// parser is the single cursor shared by the typed state wrappers below. The
// wrappers are the only exported handles to it: MethodParser can only
// produce a URIParser, and so on down the chain, which makes skipping a
// grammar position a compile error rather than a runtime surprise.
type parser struct {
	cursor
	req   *Request
	state parserState
}

// Start positions a new parser at the method token of the request line. It
// borrows data without copying; the caller keeps ownership and must not
// mutate it while the parser or the resulting Request is in use.
func Start(data []byte) MethodParser {
	return MethodParser{&parser{
		cursor: cursor{rest: data},
		req:    newRequest(),
		state:  stateMethod,
	}}
}

// claim asserts the parser still sits at the state the wrapper was issued
// for. Advancing a stale wrapper is a caller bug, not an input error.
func (p *parser) claim(want parserState) {
	if p.state != want {
		panic(fmt.Sprintf("BUG: request parser advanced out of order: at %v, want %v", p.state, want))
	}
}

func (p *parser) fail(err error) error {
	p.state = stateFailed
	return err
}

// MethodParser is positioned at the first byte of the method token.
type MethodParser struct {
	p *parser
}

// URIParser is positioned at the first byte of the request target.
type URIParser struct {
	p *parser
}

// VersionParser is positioned at the first byte of the protocol version.
type VersionParser struct {
	p *parser
}

// HeaderParser is positioned at the first header line, or at the blank line
// when the request has no headers.
type HeaderParser struct {
	p *parser
}

// BodyParser is positioned at the first body byte.
type BodyParser struct {
	p *parser
}

// Advance extracts the method token and validates it against the eight
// RFC 2616 methods.
func (m MethodParser) Advance() (URIParser, error) {
	p := m.p
	p.claim(stateMethod)

	tok, found := p.takeUntil(space)
	if !found {
		return URIParser{}, p.fail(fmt.Errorf("%w: no space after method", ErrTruncatedInput))
	}

	method := uf.B2S(tok)
	if !isValidMethod(method) {
		return URIParser{}, p.fail(fmt.Errorf("%w: %q", ErrInvalidMethod, method))
	}

	p.req.Method = method
	p.rest = p.rest[1:]
	p.skipSpaces()
	p.state = stateURI
	return URIParser{p}, nil
}

// Advance stores the request target verbatim. No validation and no
// decoding: percent escapes and query strings pass through untouched.
func (u URIParser) Advance() VersionParser {
	p := u.p
	p.claim(stateURI)

	tok, _ := p.takeUntil(space)
	p.req.RequestTarget = uf.B2S(tok)
	p.skipSpaces()
	p.state = stateVersion
	return VersionParser{p}
}

// Advance extracts the version token terminated by CR LF and validates it.
func (v VersionParser) Advance() (HeaderParser, error) {
	p := v.p
	p.claim(stateVersion)

	tok, found := p.takeLine()
	if !found {
		return HeaderParser{}, p.fail(fmt.Errorf("%w: request line without CR LF", ErrTruncatedInput))
	}

	version := uf.B2S(tok)
	if !isValidVersion(version) {
		return HeaderParser{}, p.fail(fmt.Errorf("%w: %q", ErrInvalidVersion, version))
	}

	p.req.HttpVersion = version
	p.state = stateHeaders
	return HeaderParser{p}, nil
}

// Advance consumes header lines until the blank line that ends the header
// block, then eats the blank line itself. Each iteration consumes at least
// one full line, so the loop terminates as long as the terminators exist;
// a line that never reaches CR LF is reported as truncation instead of
// scanning past the buffer.
func (h HeaderParser) Advance() (BodyParser, error) {
	p := h.p
	p.claim(stateHeaders)

	for len(p.rest) >= 2 && !bytes.HasPrefix(p.rest, crlf) {
		if err := p.parseHeaderLine(); err != nil {
			return BodyParser{}, p.fail(err)
		}
	}

	p.skipCRLF()
	p.state = stateBody
	return BodyParser{p}, nil
}

// parseHeaderLine reads one `key: value` line. The key ends at the first
// whitespace or colon byte; the separator is any run of whitespace and
// colons, which tolerates "Key:Value", "Key :  Value" and a key with no
// colon at all; the value runs to the next CR LF. A repeated key
// overwrites the earlier value.
func (p *parser) parseHeaderLine() error {
	idx := bytes.IndexAny(p.rest, " \t\r\n:")
	if idx == -1 {
		return fmt.Errorf("%w: header line without separator", ErrTruncatedInput)
	}

	key := p.rest[:idx]
	p.rest = p.rest[idx:]

	for len(p.rest) > 0 && (isWhitespace(p.rest[0]) || p.rest[0] == colon) {
		p.rest = p.rest[1:]
	}

	value, found := p.takeLine()
	if !found {
		return fmt.Errorf("%w: header value without CR LF", ErrTruncatedInput)
	}

	p.req.Headers.Set(uf.B2S(key), uf.B2S(value))
	return nil
}

// Advance hands everything left in the buffer to the Request as its body,
// verbatim and unframed, and yields the finished Request. Terminal: the
// parser cannot be used afterwards.
func (b BodyParser) Advance() *Request {
	p := b.p
	p.claim(stateBody)

	p.req.Body = p.rest
	p.rest = nil
	p.state = stateDone
	return p.req
}
