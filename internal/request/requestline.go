package request

// isValidMethod checks the method token against RFC 2616 section 5.1.1.
func isValidMethod(method string) bool {
	switch method {
	case "OPTIONS", "GET", "HEAD", "POST", "PUT", "DELETE", "TRACE", "CONNECT":
		return true
	default:
		return false
	}
}

// isValidVersion checks the protocol token of the request line. HTTP/1 and
// HTTP/2 are accepted alongside the dotted 1.x forms.
func isValidVersion(version string) bool {
	switch version {
	case "HTTP/1", "HTTP/1.0", "HTTP/1.1", "HTTP/2":
		return true
	default:
		return false
	}
}
