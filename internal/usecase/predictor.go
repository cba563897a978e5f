package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clinic-hr-backend/internal/model"
)

// Predictor asks a hosted text-generation API whether an employee is likely
// to be late tomorrow, based on their recent attendance. The endpoint speaks
// the common chat-completions shape; which provider sits behind it is a
// deployment choice.
type Predictor struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

func NewPredictor(endpoint, apiKey string) *Predictor {
	return &Predictor{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

var ErrPredictorNotConfigured = errors.New("prediction endpoint is not configured")

// BuildLatenessPrompt renders the employee's recent records into the prompt
// template. Deterministic so the template can be unit tested without any
// HTTP round trip.
func BuildLatenessPrompt(name string, records []model.DailyAttendance) string {
	var b strings.Builder
	b.WriteString("You are an HR assistant for a clinic. Based on the attendance history below, ")
	b.WriteString("estimate the probability that the employee arrives late (after 08:00) on their next working day. ")
	b.WriteString("Answer with a percentage and one short sentence of reasoning.\n\n")
	fmt.Fprintf(&b, "Employee: %s\n", name)
	b.WriteString("Recent attendance (date, morning in, late minutes, worked hours):\n")

	if len(records) == 0 {
		b.WriteString("(no records)\n")
		return b.String()
	}
	for _, rec := range records {
		morningIn := rec.MorningIn
		if morningIn == "" {
			morningIn = "-"
		}
		if rec.IsOnLeave {
			fmt.Fprintf(&b, "- %s: on leave (%s)\n", rec.Date, rec.LeaveType)
			continue
		}
		fmt.Fprintf(&b, "- %s: in %s, late %d min, worked %.2f h\n",
			rec.Date, morningIn, rec.TotalLateMinutes, rec.TotalWorkedHours)
	}
	return b.String()
}

type chatRequest struct {
	Model    string        `json:"model,omitempty"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// PredictLateness sends the prompt and returns the model's text answer.
func (p *Predictor) PredictLateness(name string, records []model.DailyAttendance) (string, error) {
	if p.Endpoint == "" || p.APIKey == "" {
		return "", ErrPredictorNotConfigured
	}

	payload, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: "user", Content: BuildLatenessPrompt(name, records)},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("prediction API returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("prediction API returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
