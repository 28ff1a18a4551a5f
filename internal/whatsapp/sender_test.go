package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendEnvelope(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "tok-123", "5511999")

	if err := s.Send(context.Background(), "+15551234567", "hello there"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotPath != "/5511999/messages" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("auth = %q", gotAuth)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload["messaging_product"] != "whatsapp" {
		t.Fatalf("messaging_product = %v", payload["messaging_product"])
	}
	if payload["to"] != "+15551234567" {
		t.Fatalf("to = %v", payload["to"])
	}
	if payload["type"] != "text" {
		t.Fatalf("type = %v", payload["type"])
	}
	text, _ := payload["text"].(map[string]any)
	if text["body"] != "hello there" {
		t.Fatalf("text.body = %v", text["body"])
	}
}

func TestSendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer srv.Close()

	s := NewSender(srv.URL, "stale", "5511999")

	err := s.Send(context.Background(), "+15551234567", "hello")

	var cerr *ChannelError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ChannelError, got %v", err)
	}
	if cerr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d", cerr.Status)
	}
	if cerr.Body != `{"error":"bad token"}` {
		t.Fatalf("body = %q", cerr.Body)
	}
}

func TestNewSenderDefaultBase(t *testing.T) {
	s := NewSender("", "tok", "id")
	if s.apiBase != DefaultAPIBase {
		t.Fatalf("apiBase = %q", s.apiBase)
	}

	s = NewSender("https://example.com/v1/", "tok", "id")
	if s.apiBase != "https://example.com/v1" {
		t.Fatalf("apiBase = %q, want trailing slash trimmed", s.apiBase)
	}
}
