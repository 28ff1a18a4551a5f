// Package smtp implements the minimal command/response exchange needed
// to deliver one HTML message to a relay. Each Send opens a fresh
// connection, walks the sequence
//
//	connect → greeting → EHLO → AUTH LOGIN → user → pass →
//	MAIL FROM → RCPT TO → DATA → message → QUIT
//
// validating the reply code at every step, and closes the socket on
// every exit path. No pooling, no STARTTLS, no retries: delivery is
// best-effort by design and the callers treat it that way.
package smtp

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// ErrNotConfigured is returned when SMTP credentials are absent. Email
// is optional infrastructure; callers answer success and move on.
var ErrNotConfigured = errors.New("smtp not configured")

// Steps of the exchange, used in ProtocolError.
const (
	StepConnect      = "connect"
	StepGreeting     = "greeting"
	StepEhlo         = "ehlo"
	StepAuth         = "auth"
	StepAuthUsername = "auth-username"
	StepAuthPassword = "auth-password"
	StepMailFrom     = "mail-from"
	StepRcptTo       = "rcpt-to"
	StepData         = "data"
	StepMessage      = "message"
)

// ProtocolError identifies the step that failed and what the server
// answered (or the transport error text).
type ProtocolError struct {
	Step     string
	Response string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("smtp %s: %s", e.Step, e.Response)
}

type Client struct {
	host     string
	port     string
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewClient builds a client from relay settings. Empty host, port,
// username or password leaves the client unconfigured; from falls back
// to the username.
func NewClient(host, port, username, password, from string) *Client {
	if from == "" {
		from = username
	}
	return &Client{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		timeout:  10 * time.Second,
	}
}

func (c *Client) Configured() bool {
	return c.host != "" && c.port != "" && c.username != "" && c.password != ""
}

// Send delivers one HTML email. It returns ErrNotConfigured without
// touching the network when credentials are absent, and a
// *ProtocolError when the relay rejects or breaks the exchange.
func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(c.host, c.port))
	if err != nil {
		return &ProtocolError{Step: StepConnect, Response: err.Error()}
	}
	defer conn.Close()

	s := &session{conn: conn, r: bufio.NewReader(conn), timeout: c.timeout}

	if err := s.expect(StepGreeting, 220); err != nil {
		return err
	}
	if err := s.cmd(StepEhlo, 250, "EHLO %s", c.host); err != nil {
		return err
	}
	if err := s.cmd(StepAuth, 334, "AUTH LOGIN"); err != nil {
		return err
	}
	if err := s.cmd(StepAuthUsername, 334, "%s", b64(c.username)); err != nil {
		return err
	}
	if err := s.cmd(StepAuthPassword, 235, "%s", b64(c.password)); err != nil {
		return err
	}
	if err := s.cmd(StepMailFrom, 250, "MAIL FROM:<%s>", c.from); err != nil {
		return err
	}
	if err := s.cmd(StepRcptTo, 250, "RCPT TO:<%s>", to); err != nil {
		return err
	}
	if err := s.cmd(StepData, 354, "DATA"); err != nil {
		return err
	}

	if err := s.write(StepMessage, buildMessage(c.from, to, subject, html)); err != nil {
		return err
	}
	if err := s.expect(StepMessage, 250); err != nil {
		return err
	}

	// Best effort; the message is already accepted.
	_ = s.write("quit", "QUIT\r\n")

	return nil
}

// buildMessage frames headers + blank line + body + terminating dot,
// all CRLF as the protocol mandates.
func buildMessage(from, to, subject, html string) string {
	return strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=utf-8",
		"",
		html,
		".",
		"",
	}, "\r\n")
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// --------------------------------------------------
// Session
// --------------------------------------------------

type session struct {
	conn    net.Conn
	r       *bufio.Reader
	timeout time.Duration
}

func (s *session) cmd(step string, want int, format string, args ...any) error {
	if err := s.write(step, fmt.Sprintf(format, args...)+"\r\n"); err != nil {
		return err
	}
	return s.expect(step, want)
}

func (s *session) write(step, payload string) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(s.timeout))
	if _, err := s.conn.Write([]byte(payload)); err != nil {
		return &ProtocolError{Step: step, Response: err.Error()}
	}
	return nil
}

// expect reads one (possibly multi-line) reply and checks its code.
func (s *session) expect(step string, want int) error {
	code, text, err := s.readReply()
	if err != nil {
		return &ProtocolError{Step: step, Response: err.Error()}
	}
	if code != want {
		return &ProtocolError{Step: step, Response: text}
	}
	return nil
}

// readReply consumes an SMTP reply. Continuation lines use "NNN-",
// the final line "NNN ".
func (s *session) readReply() (int, string, error) {
	var lines []string

	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.timeout))
		line, err := s.r.ReadString('\n')
		if err != nil {
			return 0, "", err
		}

		line = strings.TrimRight(line, "\r\n")
		lines = append(lines, line)

		if len(line) >= 4 && line[3] == '-' {
			continue
		}

		if len(line) < 3 {
			return 0, strings.Join(lines, "\n"), fmt.Errorf("malformed reply: %q", line)
		}

		code, err := strconv.Atoi(line[:3])
		if err != nil {
			return 0, strings.Join(lines, "\n"), fmt.Errorf("malformed reply: %q", line)
		}

		return code, strings.Join(lines, "\n"), nil
	}
}
