package main

import (
	"fmt"
	"io"
	"net"

	"github.com/Brownie44l1/reqparse/internal/logging"
	"github.com/Brownie44l1/reqparse/internal/request"
)

func main() {
	listener, err := net.Listen("tcp", ":42069")
	if err != nil {
		fmt.Println("Listen error:", err)
		return
	}
	defer listener.Close()
	fmt.Println("Listening on port 42069...")

	logger := &logging.DefaultLogger{}

	for {
		conn, err := listener.Accept()
		if err != nil {
			fmt.Println("Accept error:", err)
			continue
		}

		go handleConnection(conn, logger)
	}
}

// handleConnection reads one request per connection. The parser only works
// on fully buffered input, so the whole request is pulled into memory
// before parsing starts.
func handleConnection(conn net.Conn, logger logging.Logger) {
	defer conn.Close()

	buf := make([]byte, 64<<10)
	n, err := conn.Read(buf)
	if err != nil && err != io.EOF {
		logger.Error("read failed", logging.Field{Key: "err", Value: err})
		return
	}

	req, err := request.Parse(buf[:n])
	if err != nil {
		logger.Warn("bad request", logging.Field{Key: "err", Value: err.Error()})
		return
	}

	logger.Info("request",
		logging.Field{Key: "method", Value: req.Method},
		logging.Field{Key: "target", Value: req.RequestTarget},
		logging.Field{Key: "version", Value: req.HttpVersion},
		logging.Field{Key: "headers", Value: req.Headers.Len()},
		logging.Field{Key: "body_bytes", Value: len(req.Body)},
	)
}
