// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Response framing. The first byte of every server response is a type tag:
//
//	'L'  length-prefixed: the next 10 bytes are an ASCII decimal giving the
//	     exact payload length in bytes.
//	'A'  unbounded: accumulate chunks until the stream goes quiet.
//
// Any other tag means the server side is misbehaving; the tag byte is treated
// as lost and the rest is drained with an extended quiescence window.
const (
	tagLengthPrefixed = 'L'
	tagAccumulate     = 'A'

	lengthHeaderSize = 10
	recvChunkSize    = 4096

	// Ceiling on waiting for the first chunk of an unbounded response.
	accumulateCeiling = 60 * time.Second

	// Quiescence window used on the degraded unknown-tag path.
	fallbackQuiescence = 5 * time.Second
)

const errSentinel = ":error"

// SendQuery performs exactly one request/response exchange with the Pathway
// Tools server: open a fresh connection, write the raw bytes of expr, read
// one framed response, decode it as JSON, and close the connection on every
// exit path. There is no connection reuse and no retry; queries can mutate
// the knowledge base and are not idempotent by default.
//
// A JSON string result starting with ":error" is the server's failure
// convention and surfaces as *RemoteError.
func SendQuery(ctx context.Context, cfg Config, expr string) (any, error) {
	trace := ""
	if cfg.Debug {
		trace = uuid.NewString()[:8]
		log.Printf("[gocyc] %s send: %s", trace, expr)
	}

	d := net.Dialer{Timeout: cfg.Timeout}
	conn, err := d.DialContext(ctx, "tcp", cfg.addr())
	if err != nil {
		return nil, &ConnError{Host: cfg.Host, Port: cfg.Port, Err: err}
	}
	defer conn.Close()

	// The timeout covers the whole round trip, not each byte.
	deadline := time.Now().Add(cfg.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, &ConnError{Host: cfg.Host, Port: cfg.Port, Err: err}
	}

	if err := sendAll(conn, []byte(expr)); err != nil {
		return nil, &ConnError{Host: cfg.Host, Port: cfg.Port, Err: err}
	}

	payload, err := recvAll(conn, cfg)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return nil, &ConnError{Host: cfg.Host, Port: cfg.Port, Err: err}
		}
		return nil, err
	}
	if cfg.Debug && len(payload) < 4000 {
		log.Printf("[gocyc] %s recv: %s", trace, payload)
	}
	if len(payload) == 0 {
		return nil, &ProtocolError{Msg: "empty response"}
	}

	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, &ProtocolError{Msg: "response is not valid JSON", Err: err}
	}
	if s, ok := v.(string); ok && strings.HasPrefix(s, errSentinel) {
		return nil, &RemoteError{Diagnostic: s}
	}
	return v, nil
}

// sendAll writes buf fully. A zero-byte write with no error means the
// connection broke under us.
func sendAll(conn net.Conn, buf []byte) error {
	for len(buf) > 0 {
		n, err := conn.Write(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return errors.New("connection broke while sending query")
		}
		buf = buf[n:]
	}
	return nil
}

// recvAll reads one framed response: a single tag byte followed by the
// payload in the tag's framing.
func recvAll(conn net.Conn, cfg Config) ([]byte, error) {
	tag := make([]byte, 1)
	if _, err := io.ReadFull(conn, tag); err != nil {
		return nil, &ProtocolError{Msg: "reading response tag", Err: err}
	}
	switch tag[0] {
	case tagLengthPrefixed:
		header, err := recvFixed(conn, lengthHeaderSize)
		if err != nil {
			return nil, &ProtocolError{Msg: "reading length header", Err: err}
		}
		n, err := strconv.Atoi(strings.TrimSpace(string(header)))
		if err != nil {
			return nil, &ProtocolError{Msg: "bad length header " + strconv.Quote(string(header)), Err: err}
		}
		payload, err := recvFixed(conn, n)
		if err != nil {
			return nil, &ProtocolError{Msg: "reading length-prefixed payload", Err: err}
		}
		return payload, nil
	case tagAccumulate:
		return recvQuiescent(conn, cfg.Quiescence)
	default:
		// The tag byte itself is lost; best effort to drain whatever the
		// server managed to send.
		return recvQuiescent(conn, fallbackQuiescence)
	}
}

// recvFixed reads exactly n bytes, tolerating partial reads. If the stream
// closes early it returns what was accumulated; a short payload simply fails
// JSON decoding downstream. Timeouts and other hard errors are returned.
func recvFixed(conn net.Conn, n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	chunk := make([]byte, recvChunkSize)
	for len(buf) < n {
		want := n - len(buf)
		if want > len(chunk) {
			want = len(chunk)
		}
		m, err := conn.Read(chunk[:want])
		if m > 0 {
			buf = append(buf, chunk[:m]...)
		}
		if errors.Is(err, io.EOF) {
			return buf, nil
		}
		if err != nil {
			return buf, err
		}
	}
	return buf, nil
}

// recvQuiescent reads an unbounded response. Once at least one chunk has
// arrived, an idle period of window means the message is complete. If nothing
// at all arrives within accumulateCeiling, give up and return empty.
func recvQuiescent(conn net.Conn, window time.Duration) ([]byte, error) {
	var buf bytes.Buffer
	start := time.Now()
	chunk := make([]byte, recvChunkSize)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(window))
		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err == nil {
			continue
		}
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			if buf.Len() > 0 {
				break
			}
			if time.Since(start) > accumulateCeiling {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		return nil, &ProtocolError{Msg: "reading unbounded response", Err: err}
	}
	return buf.Bytes(), nil
}
