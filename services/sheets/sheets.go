package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"Cheongcheop/services/rsvp"
)

// Payload is the JSON body posted to the Google Sheets web app. The webhook
// contract uses camelCase field names, unlike the datastore's snake_case
// columns.
type Payload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Attendance   string `json:"attendance"`
	GuestCount   *int   `json:"guestCount"`
	HasChildren  string `json:"hasChildren"`
	ChildrenAges string `json:"childrenAges"`
	Note         string `json:"note"`
}

// NewPayload flattens a validated submission into the webhook's wire format.
func NewPayload(sub *rsvp.Submission) Payload {
	return Payload{
		Name:         sub.Name,
		Phone:        sub.Phone,
		Email:        deref(sub.Email),
		Attendance:   string(sub.Attendance),
		GuestCount:   sub.GuestCount,
		HasChildren:  deref(sub.HasChildren),
		ChildrenAges: deref(sub.ChildrenAges),
		Note:         deref(sub.Note),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Client posts RSVP submissions to the configured Google Sheets web app.
// The secondary sink is optional: with an empty URL the client is disabled
// and Send is never called.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds a client for the given web-app URL. An empty URL yields
// a disabled client.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// Enabled reports whether a webhook URL was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.url != ""
}

// Send posts the payload as JSON. A non-2xx response counts as an error.
// The caller is expected to discard the result for the user-visible outcome
// and only log it for operators.
func (c *Client) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding sheets payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building sheets request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to sheets webhook: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheets webhook returned status %d", resp.StatusCode)
	}
	return nil
}
