package protocol

import (
	"errors"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Request
	}{
		{
			"path with query",
			"GET /api/v1/geo?city=Malmo HTTP/1.1\r\nHost: localhost\r\n\r\n",
			Request{Method: "GET", Path: "/api/v1/geo", RawQuery: "city=Malmo", HasQuery: true},
		},
		{
			"path without query",
			"GET /api/v1/geo HTTP/1.1\r\n\r\n",
			Request{Method: "GET", Path: "/api/v1/geo"},
		},
		{
			"empty query after question mark",
			"GET /x? HTTP/1.1\r\n\r\n",
			Request{Method: "GET", Path: "/x", RawQuery: "", HasQuery: true},
		},
		{
			"only first question mark splits",
			"GET /a?b=1?c=2 HTTP/1.1\r\n\r\n",
			Request{Method: "GET", Path: "/a", RawQuery: "b=1?c=2", HasQuery: true},
		},
		{
			"options preflight",
			"OPTIONS /api/v1/weather HTTP/1.1\r\nOrigin: http://x\r\n\r\n",
			Request{Method: "OPTIONS", Path: "/api/v1/weather"},
		},
		{
			"bytes after first crlf ignored",
			"GET / HTTP/1.1\r\ngarbage \x00 bytes ? here\r\n",
			Request{Method: "GET", Path: "/"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest([]byte(tt.raw), DefaultMaxMethodLen, DefaultMaxPathLen)
			if err != nil {
				t.Fatalf("ParseRequest(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseRequest(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseRequestMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no crlf", "GET / HTTP/1.1"},
		{"no spaces", "GET/HTTP\r\n"},
		{"one space", "GET /x\r\n"},
		{"empty line", "\r\n"},
		{"lf only", "GET / HTTP/1.1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.raw), DefaultMaxMethodLen, DefaultMaxPathLen)
			if !errors.Is(err, ErrMalformedRequestLine) {
				t.Errorf("ParseRequest(%q) error = %v, want ErrMalformedRequestLine", tt.raw, err)
			}
		})
	}
}

func TestParseRequestTruncation(t *testing.T) {
	t.Run("method truncated", func(t *testing.T) {
		got, err := ParseRequest([]byte("DELETE /x HTTP/1.1\r\n"), 3, DefaultMaxPathLen)
		if err != nil {
			t.Fatal(err)
		}
		if got.Method != "DEL" {
			t.Errorf("Method = %q, want %q", got.Method, "DEL")
		}
	})
	t.Run("truncation drops query", func(t *testing.T) {
		got, err := ParseRequest([]byte("GET /abcdef?x=1 HTTP/1.1\r\n"), DefaultMaxMethodLen, 4)
		if err != nil {
			t.Fatal(err)
		}
		want := Request{Method: "GET", Path: "/abc"}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
	t.Run("truncation cuts inside query", func(t *testing.T) {
		got, err := ParseRequest([]byte("GET /a?xy=1 HTTP/1.1\r\n"), DefaultMaxMethodLen, 5)
		if err != nil {
			t.Fatal(err)
		}
		want := Request{Method: "GET", Path: "/a", RawQuery: "xy", HasQuery: true}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})
}
