package usecase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestBuildLatenessPrompt(t *testing.T) {
	records := []model.DailyAttendance{
		{Date: "2026-03-03", MorningIn: "08:20", TotalLateMinutes: 20, TotalWorkedHours: 7.5},
		{Date: "2026-03-04", IsOnLeave: true, LeaveType: "Sick"},
		{Date: "2026-03-05", MorningIn: "", TotalLateMinutes: 0, TotalWorkedHours: 0},
	}

	prompt := usecase.BuildLatenessPrompt("Ana Wijaya", records)

	assert.Contains(t, prompt, "Employee: Ana Wijaya")
	assert.Contains(t, prompt, "- 2026-03-03: in 08:20, late 20 min, worked 7.50 h")
	assert.Contains(t, prompt, "- 2026-03-04: on leave (Sick)")
	assert.Contains(t, prompt, "- 2026-03-05: in -, late 0 min")
}

func TestBuildLatenessPromptNoHistory(t *testing.T) {
	prompt := usecase.BuildLatenessPrompt("Ana Wijaya", nil)
	assert.Contains(t, prompt, "(no records)")
}

func TestPredictLatenessNotConfigured(t *testing.T) {
	p := usecase.NewPredictor("", "")

	_, err := p.PredictLateness("Ana Wijaya", nil)
	assert.ErrorIs(t, err, usecase.ErrPredictorNotConfigured)
}

func TestPredictLateness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "70% likely to be late."}},
			},
		})
	}))
	defer srv.Close()

	p := usecase.NewPredictor(srv.URL, "test-key")

	answer, err := p.PredictLateness("Ana Wijaya", []model.DailyAttendance{
		{Date: "2026-03-03", MorningIn: "08:20", TotalLateMinutes: 20, TotalWorkedHours: 7.5},
	})

	assert.NoError(t, err)
	assert.Equal(t, "70% likely to be late.", answer)
}

func TestPredictLatenessUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := usecase.NewPredictor(srv.URL, "test-key")

	_, err := p.PredictLateness("Ana Wijaya", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
