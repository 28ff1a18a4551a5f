// Package whatsapp is a thin client for the WhatsApp Cloud messaging
// API: one POST per text message, bearer auth, nothing else.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultAPIBase = "https://graph.facebook.com/v20.0"

// ChannelError carries the upstream status and response body when the
// provider rejects a send. The orchestrator logs it and moves on.
type ChannelError struct {
	Status int
	Body   string
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("whatsapp api error: %d %s", e.Status, e.Body)
}

type Sender struct {
	apiBase       string
	accessToken   string
	phoneNumberID string
	http          *http.Client
}

func NewSender(apiBase, accessToken, phoneNumberID string) *Sender {
	apiBase = strings.TrimRight(strings.TrimSpace(apiBase), "/")
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Sender{
		apiBase:       apiBase,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

func (s *Sender) Send(ctx context.Context, to, text string) error {
	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: text},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", s.apiBase, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &ChannelError{Status: resp.StatusCode, Body: string(body)}
	}

	return nil
}
