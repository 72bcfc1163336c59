// Copyright (C) 2014-2026, SRI International. All rights reserved.
// See the file LICENSE for licensing terms.

package gocyc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// rawServer accepts one connection, reads the request, writes raw response
// bytes and closes. Used to exercise the response framing byte-for-byte.
func rawServer(t *testing.T, response []byte) Config {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		conn.Read(buf)
		conn.Write(response)
	}()

	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Timeout = 5 * time.Second
	cfg.Quiescence = 200 * time.Millisecond
	return cfg
}

func frameL(payload string) []byte {
	return []byte(fmt.Sprintf("L%010d%s", len(payload), payload))
}

func TestSendQueryLengthPrefixed(t *testing.T) {
	cfg := rawServer(t, frameL(`{"ok": true}`))

	v, err := SendQuery(context.Background(), cfg, "(all-orgids)")
	if err != nil {
		t.Fatalf("SendQuery: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("got %T, want map", v)
	}
	if m["ok"] != true {
		t.Errorf("got %v, want true", m["ok"])
	}
}

func TestSendQueryAccumulate(t *testing.T) {
	cfg := rawServer(t, []byte(`A["ecoli", "meta"]`))

	v, err := SendQuery(context.Background(), cfg, "(all-orgids)")
	if err != nil {
		t.Fatalf("SendQuery: %v", err)
	}
	l, ok := v.([]any)
	if !ok || len(l) != 2 {
		t.Fatalf("got %#v, want two orgids", v)
	}
}

func TestSendQueryAccumulateQuiescence(t *testing.T) {
	// Server sends two chunks then goes quiet without closing; the message
	// must complete after the quiescence window.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		conn.Read(buf)
		conn.Write([]byte(`A["ecoli",`))
		time.Sleep(50 * time.Millisecond)
		conn.Write([]byte(` "meta"]`))
		// Keep the connection open until the client is done reading.
		time.Sleep(600 * time.Millisecond)
	}()

	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Timeout = 5 * time.Second
	cfg.Quiescence = 200 * time.Millisecond

	v, err := SendQuery(context.Background(), cfg, "(all-orgids)")
	if err != nil {
		t.Fatalf("SendQuery: %v", err)
	}
	l, ok := v.([]any)
	if !ok || len(l) != 2 {
		t.Fatalf("got %#v, want two orgids", v)
	}
	<-done
}

func TestSendQueryUnknownTagFallsBack(t *testing.T) {
	// The bogus tag byte is consumed; the remaining bytes still decode.
	cfg := rawServer(t, []byte(`X{"n": 1}`))

	v, err := SendQuery(context.Background(), cfg, "(q)")
	if err != nil {
		t.Fatalf("SendQuery: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok || m["n"] != float64(1) {
		t.Fatalf("got %#v, want {n: 1}", v)
	}
}

func TestSendQueryRemoteErrorSentinel(t *testing.T) {
	cfg := rawServer(t, frameL(`":error unknown frame FOO"`))

	_, err := SendQuery(context.Background(), cfg, "(q)")
	var re *RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want RemoteError", err)
	}
	if !strings.Contains(re.Diagnostic, "unknown frame FOO") {
		t.Errorf("diagnostic %q lost the server text", re.Diagnostic)
	}
}

func TestSendQueryTruncatedPayload(t *testing.T) {
	// Header promises 100 bytes but the stream closes after 5: the short
	// read itself is tolerated, the JSON decode then fails.
	cfg := rawServer(t, []byte("L0000000100{\"ok\""))

	_, err := SendQuery(context.Background(), cfg, "(q)")
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want ProtocolError", err)
	}
}

func TestSendQueryEmptyResponse(t *testing.T) {
	cfg := rawServer(t, []byte("A"))

	_, err := SendQuery(context.Background(), cfg, "(q)")
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want ProtocolError", err)
	}
}

func TestSendQueryConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	cfg.Timeout = 2 * time.Second
	ln.Close()

	_, err = SendQuery(context.Background(), cfg, "(q)")
	var ce *ConnError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConnError", err)
	}
}

func TestSendQueryBadLengthHeader(t *testing.T) {
	cfg := rawServer(t, []byte("Lnotanumber{}"))

	_, err := SendQuery(context.Background(), cfg, "(q)")
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want ProtocolError", err)
	}
}
