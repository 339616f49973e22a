// ABOUTME: Sharing of generated plans: webhook POSTs and WhatsApp/email links.
// ABOUTME: Webhook delivery is a single context-bound attempt with no retries.
package share

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
)

// DefaultTimeout bounds a webhook POST when the caller's context has no deadline.
const DefaultTimeout = 15 * time.Second

// Payload is the JSON body posted to a webhook.
type Payload struct {
	Event        string         `json:"event"`
	SentAt       time.Time      `json:"sentAt"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	MobileNumber string         `json:"mobileNumber,omitempty"`
	Metrics      models.Metrics `json:"metrics"`
	Macros       models.Macros  `json:"macros"`
	Summary      string         `json:"summary"`
	Plan         *models.Plan   `json:"plan"`
}

// NewPayload builds the webhook body for a plan.
func NewPayload(p *models.Plan, now time.Time) Payload {
	return Payload{
		Event:        "plan.generated",
		SentAt:       now.UTC(),
		Name:         p.Form.Name,
		Email:        p.Form.Email,
		MobileNumber: p.Form.MobileNumber,
		Metrics:      p.Diet.Metrics,
		Macros:       p.Diet.Macros,
		Summary:      SummaryText(p),
		Plan:         p,
	}
}

// Webhook posts plans to a configured URL.
type Webhook struct {
	URL    string
	Client *http.Client
}

// NewWebhook validates the URL and returns a Webhook using a default client.
func NewWebhook(rawURL string) (*Webhook, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("webhook URL must be http(s) with a host: %q", rawURL)
	}
	return &Webhook{URL: u.String(), Client: &http.Client{Timeout: DefaultTimeout}}, nil
}

// Send posts the plan once. Any non-2xx response is an error.
func (w *Webhook) Send(ctx context.Context, p *models.Plan) error {
	body, err := json.Marshal(NewPayload(p, time.Now()))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	log.WithFields(log.Fields{
		"url":    w.URL,
		"status": resp.StatusCode,
		"bytes":  len(body),
	}).Debug("webhook delivered")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook rejected plan: %s", resp.Status)
	}
	return nil
}

// SummaryText is the short plain-text plan summary used in links.
func SummaryText(p *models.Plan) string {
	m := p.Diet.Metrics
	mac := p.Diet.Macros

	var sb strings.Builder
	if p.Form.Name != "" {
		sb.WriteString(fmt.Sprintf("%s's 75-day wellness plan\n", p.Form.Name))
	} else {
		sb.WriteString("My 75-day wellness plan\n")
	}
	sb.WriteString(fmt.Sprintf("Goal: %s, diet: %s\n", p.Form.FitnessGoal, p.Form.DietaryPreference))
	sb.WriteString(fmt.Sprintf("BMI %.1f (%s), target %d kcal/day\n", m.BMI, m.BMICategory, m.DailyCalories))
	sb.WriteString(fmt.Sprintf("Macros: %dg protein, %dg fat, %dg carbs\n", mac.ProteinG, mac.FatG, mac.CarbsG))
	if len(p.Diet.Days) > 0 {
		d := p.Diet.Days[0]
		sb.WriteString(fmt.Sprintf("Day 1: %s / %s / %s", d.Breakfast, d.Lunch, d.Dinner))
	}
	return sb.String()
}

// WhatsAppLink builds a wa.me link that opens a chat prefilled with the
// summary. Non-digits are stripped from the number; an empty number lets the
// user pick a contact. Ten-digit numbers are treated as Indian mobiles.
func WhatsAppLink(mobile string, p *models.Plan) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, mobile)
	if len(digits) == 10 {
		digits = "91" + digits
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(SummaryText(p))
}

// MailtoLink builds a mailto: link with the summary as the body.
func MailtoLink(email string, p *models.Plan) string {
	q := url.Values{}
	q.Set("subject", "Your 75-day wellness plan")
	q.Set("body", SummaryText(p))
	// mailto bodies want %20 rather than + for spaces.
	query := strings.ReplaceAll(q.Encode(), "+", "%20")
	return "mailto:" + url.PathEscape(strings.TrimSpace(email)) + "?" + query
}
