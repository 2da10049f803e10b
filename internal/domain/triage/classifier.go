package triage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Classifier screens a free-text symptom description.
type Classifier interface {
	Classify(ctx context.Context, symptoms string) (*Result, error)
}

// --- Remote classifier ---

// HTTPClassifier delegates classification to an external service.
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type remoteRequest struct {
	Symptoms string `json:"symptoms"`
}

type remoteResponse struct {
	Urgency   string `json:"urgency"`
	Specialty string `json:"specialty"`
	Advice    string `json:"advice"`
}

func (h *HTTPClassifier) Classify(ctx context.Context, symptoms string) (*Result, error) {
	body, err := json.Marshal(remoteRequest{Symptoms: symptoms})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classifier response: %w", err)
	}

	urgency := Urgency(out.Urgency)
	switch urgency {
	case UrgencyEmergency, UrgencyUrgent, UrgencyRoutine:
	default:
		return nil, fmt.Errorf("classifier returned unknown urgency %q", out.Urgency)
	}
	return &Result{Urgency: urgency, Specialty: out.Specialty, Advice: out.Advice, Source: "remote"}, nil
}

// --- Keyword classifier ---

// KeywordClassifier is a local screen used when no remote classifier is
// configured or the remote one fails.
type KeywordClassifier struct{}

var emergencyKeywords = []string{
	"chest pain", "shortness of breath", "difficulty breathing",
	"unconscious", "seizure", "severe bleeding", "stroke",
}

var urgentKeywords = []string{
	"high fever", "persistent vomiting", "severe pain",
	"dehydration", "broken", "fracture", "deep cut",
}

// specialtyKeywords maps symptom vocabulary to the specialty a patient
// should book with. First match wins, so more specific entries come first;
// no match falls through to general medicine.
var specialtyKeywords = []struct {
	specialty string
	keywords  []string
}{
	{"Cardiology", []string{"chest pain", "palpitation", "heart", "arrhythmia"}},
	{"Gastroenterology", []string{"stomach", "abdominal", "nausea", "vomit", "diarrhea", "heartburn"}},
	{"Dermatology", []string{"rash", "skin", "itch", "acne", "mole"}},
	{"Traumatology", []string{"fracture", "broken", "sprain", "joint", "back pain"}},
	{"Neurology", []string{"headache", "migraine", "dizziness", "numbness", "seizure"}},
	{"Pulmonology", []string{"cough", "breath", "wheez", "asthma"}},
}

const defaultSpecialty = "General Medicine"

func detectSpecialty(text string) string {
	for _, entry := range specialtyKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.specialty
			}
		}
	}
	return defaultSpecialty
}

func (KeywordClassifier) Classify(_ context.Context, symptoms string) (*Result, error) {
	text := strings.ToLower(symptoms)
	specialty := detectSpecialty(text)
	for _, kw := range emergencyKeywords {
		if strings.Contains(text, kw) {
			return &Result{
				Urgency:   UrgencyEmergency,
				Specialty: specialty,
				Advice:    "seek emergency care immediately, do not wait for an appointment",
				Source:    "keyword",
			}, nil
		}
	}
	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			return &Result{
				Urgency:   UrgencyUrgent,
				Specialty: specialty,
				Advice:    "book the earliest available slot, today if possible",
				Source:    "keyword",
			}, nil
		}
	}
	return &Result{
		Urgency:   UrgencyRoutine,
		Specialty: specialty,
		Advice:    "book a regular appointment with " + specialty,
		Source:    "keyword",
	}, nil
}
