package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/serenespa/booking-api/internal/smtp"
)

type countingMailer struct {
	calls int
	err   error

	to, subject, html string
}

func (m *countingMailer) Send(ctx context.Context, to, subject, html string) error {
	m.calls++
	m.to, m.subject, m.html = to, subject, html
	return m.err
}

func postEmail(t *testing.T, mailer *countingMailer, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/send-email", NewEmailHandler(mailer).Send)

	req := httptest.NewRequest(http.MethodPost, "/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSendEmailMissingFields(t *testing.T) {
	mailer := &countingMailer{}

	w := postEmail(t, mailer, `{"to":"","subject":"Hello"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if mailer.calls != 0 {
		t.Fatalf("mailer touched on invalid input")
	}
	if !strings.Contains(w.Body.String(), "to and subject are required") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSendEmailSuccess(t *testing.T) {
	mailer := &countingMailer{}

	w := postEmail(t, mailer, `{"to":"jo@example.com","subject":"Hello","html":"<p>hi</p>"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if mailer.calls != 1 {
		t.Fatalf("mailer calls = %d", mailer.calls)
	}
	if mailer.to != "jo@example.com" || mailer.subject != "Hello" || mailer.html != "<p>hi</p>" {
		t.Fatalf("mailer got %q %q %q", mailer.to, mailer.subject, mailer.html)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSendEmailNotConfiguredIsSoftSuccess(t *testing.T) {
	mailer := &countingMailer{err: smtp.ErrNotConfigured}

	w := postEmail(t, mailer, `{"to":"jo@example.com","subject":"Hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "SMTP not configured") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestSendEmailRelayFailure(t *testing.T) {
	mailer := &countingMailer{err: errors.New("relay down")}

	w := postEmail(t, mailer, `{"to":"jo@example.com","subject":"Hello"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "relay down") {
		t.Fatalf("body = %s", w.Body.String())
	}
}
