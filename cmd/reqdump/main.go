package main

import (
	"fmt"
	"os"

	json "github.com/json-iterator/go"

	"github.com/Brownie44l1/reqparse/internal/request"
)

const samplePacket = "POST /cgi-bin/process.cgi HTTP/1.1\r\n" +
	"User-Agent: Mozilla/4.0 (compatible; MSIE5.01; Windows NT)\r\n" +
	"Host: www.tutorialspoint.com\r\n" +
	"Content-Type: application/x-www-form-urlencoded\r\n" +
	"Content-Length: length\r\n" +
	"Accept-Language: en-us\r\n" +
	"Accept-Encoding: gzip, deflate\r\n" +
	"Connection: Keep-Alive\r\n" +
	"\r\n" +
	"licenseID=string&content=string&/paramsXML=string"

// requestView flattens a parsed request for JSON output. The parsed spans
// are only borrowed here; marshalling is where the copying happens.
type requestView struct {
	Method      string            `json:"method"`
	RequestURI  string            `json:"request_uri"`
	HTTPVersion string            `json:"http_version"`
	Headers     map[string]string `json:"headers"`
	Body        string            `json:"body"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "reqdump:", err)
		os.Exit(1)
	}
}

func run() error {
	atMethod := request.Start([]byte(samplePacket))

	atURI, err := atMethod.Advance()
	if err != nil {
		return err
	}
	fmt.Println("parsed method")

	atVersion := atURI.Advance()
	fmt.Println("parsed request target")

	atHeaders, err := atVersion.Advance()
	if err != nil {
		return err
	}
	fmt.Println("parsed version")

	atBody, err := atHeaders.Advance()
	if err != nil {
		return err
	}
	fmt.Println("parsed headers")

	req := atBody.Advance()
	fmt.Println(req)

	out, err := json.MarshalIndent(requestView{
		Method:      req.Method,
		RequestURI:  req.RequestTarget,
		HTTPVersion: req.HttpVersion,
		Headers:     req.Headers.All(),
		Body:        string(req.Body),
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
