// ABOUTME: Tests for webhook delivery and share link builders.
// ABOUTME: Uses httptest servers to observe single-attempt POST semantics.
package share

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YJ074/wellness-pathway-generator-sub001/internal/models"
	"github.com/YJ074/wellness-pathway-generator-sub001/internal/planner"
)

func samplePlan() *models.Plan {
	return planner.Generate(models.FormData{
		Name:              "Arjun",
		Email:             "arjun@example.com",
		MobileNumber:      "98765 43210",
		Age:               31,
		WeightKG:          72,
		HeightCM:          176,
		Gender:            models.GenderMale,
		DietaryPreference: models.DietNonVegetarian,
		FitnessGoal:       models.GoalMuscleGain,
		ExerciseFrequency: models.FrequencyHigh,
	}, planner.Options{})
}

func TestNewWebhookValidation(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://hooks.example.com/plan", false},
		{"http://localhost:8080/x", false},
		{"ftp://example.com", true},
		{"not a url", true},
		{"https://", true},
	}
	for _, tt := range tests {
		_, err := NewWebhook(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewWebhook(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestWebhookSend(t *testing.T) {
	var got Payload
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook, err := NewWebhook(srv.URL)
	if err != nil {
		t.Fatalf("NewWebhook failed: %v", err)
	}
	p := samplePlan()
	if err := hook.Send(context.Background(), p); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if got.Event != "plan.generated" || got.Email != "arjun@example.com" {
		t.Errorf("unexpected payload header fields: %+v", got)
	}
	if got.Metrics != p.Diet.Metrics {
		t.Errorf("Metrics = %+v, want %+v", got.Metrics, p.Diet.Metrics)
	}
	if got.Plan == nil || len(got.Plan.Diet.Days) != models.PlanDays {
		t.Error("payload should carry the full plan")
	}
}

func TestWebhookSendSingleAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	hook, _ := NewWebhook(srv.URL)
	err := hook.Send(context.Background(), samplePlan())
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Errorf("Send error = %v, want 502 rejection", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("webhook called %d times, want exactly 1", n)
	}
}

func TestWebhookSendHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	hook, _ := NewWebhook(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := hook.Send(ctx, samplePlan()); err == nil {
		t.Error("expected context deadline error")
	}
}

func TestSummaryText(t *testing.T) {
	p := samplePlan()
	s := SummaryText(p)
	for _, want := range []string{"Arjun's 75-day wellness plan", "Goal: muscle-gain", "kcal/day", "Day 1: "} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	p := samplePlan()

	link := WhatsAppLink("98765 43210", p)
	if !strings.HasPrefix(link, "https://wa.me/919876543210?text=") {
		t.Errorf("link = %s", link)
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if u.Query().Get("text") != SummaryText(p) {
		t.Error("text parameter should decode to the summary")
	}

	if got := WhatsAppLink("+44 7700 900123", p); !strings.HasPrefix(got, "https://wa.me/447700900123?") {
		t.Errorf("international link = %s", got)
	}
	if got := WhatsAppLink("", p); !strings.HasPrefix(got, "https://wa.me/?text=") {
		t.Errorf("empty-number link = %s", got)
	}
}

func TestMailtoLink(t *testing.T) {
	p := samplePlan()
	link := MailtoLink("arjun@example.com", p)

	if !strings.HasPrefix(link, "mailto:arjun@example.com?") {
		t.Errorf("link = %s", link)
	}
	if strings.Contains(link, "+") {
		t.Error("mailto link should encode spaces as %20")
	}
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	if u.Query().Get("body") != SummaryText(p) {
		t.Error("body parameter should decode to the summary")
	}
	if u.Query().Get("subject") != "Your 75-day wellness plan" {
		t.Errorf("subject = %q", u.Query().Get("subject"))
	}
}
