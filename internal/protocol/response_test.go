package protocol

import (
	"strings"
	"testing"
)

func TestResponseBytes(t *testing.T) {
	resp := Response{
		StatusCode:  200,
		StatusText:  "OK",
		ContentType: "application/json",
		Body:        []byte(`{"ok":true}`),
	}
	want := "HTTP/1.1 200 OK\r\n" +
		"Content-Type: application/json\r\n" +
		"Content-Length: 11\r\n" +
		"Access-Control-Allow-Origin: *\r\n" +
		"Access-Control-Allow-Methods: GET, OPTIONS\r\n" +
		"Access-Control-Allow-Headers: Content-Type\r\n" +
		"Connection: close\r\n" +
		"\r\n" +
		`{"ok":true}`
	got := string(resp.Bytes())
	if got != want {
		t.Errorf("Bytes() =\n%q\nwant\n%q", got, want)
	}
}

func TestResponseBytesEmptyBody(t *testing.T) {
	resp := Response{
		StatusCode:  204,
		StatusText:  "No Content",
		ContentType: "text/plain",
	}
	got := string(resp.Bytes())
	if !strings.HasPrefix(got, "HTTP/1.1 204 No Content\r\n") {
		t.Errorf("status line wrong: %q", got)
	}
	if !strings.Contains(got, "Content-Length: 0\r\n") {
		t.Errorf("want Content-Length: 0 in %q", got)
	}
	if !strings.HasSuffix(got, "\r\n\r\n") {
		t.Errorf("want trailing blank line, got %q", got)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "OK"},
		{204, "No Content"},
		{400, "Bad Request"},
		{404, "Not Found"},
		{405, "Method Not Allowed"},
		{999, "Unknown"},
	}
	for _, tt := range tests {
		if got := StatusText(tt.code); got != tt.want {
			t.Errorf("StatusText(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
