package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"clinic-hr-backend/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func multipartFile(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportCSV(t *testing.T) {
	repo := &fakePunchRepo{}
	hdl := handler.NewPunchHandler(repo)

	app := fiber.New()
	app.Post("/import", hdl.Import)

	csv := "AC-No.,First Name,Last Name,Time,State\n" +
		"101,Ana,Wijaya,2026-03-02 08:20:00,IN\n" +
		"101,Ana,Wijaya,2026-03-02 16:00:00,OUT\n"
	body, contentType := multipartFile(t, "export.csv", csv)

	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var out map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(3), out["rows"]) // header row stored too, aggregator filters it
	assert.NotEmpty(t, out["batch_id"])

	assert.Len(t, repo.created, 3)
	assert.Equal(t, "101", repo.created[1].DeviceID)
	assert.Equal(t, "2026-03-02 08:20:00", repo.created[1].Timestamp)
	// Every stored row carries the same batch id
	assert.Equal(t, repo.created[0].BatchID, repo.created[2].BatchID)
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	hdl := handler.NewPunchHandler(&fakePunchRepo{})

	app := fiber.New()
	app.Post("/import", hdl.Import)

	body, contentType := multipartFile(t, "export.pdf", "%PDF-1.4")
	req := httptest.NewRequest("POST", "/import", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestImportRequiresFile(t *testing.T) {
	hdl := handler.NewPunchHandler(&fakePunchRepo{})

	app := fiber.New()
	app.Post("/import", hdl.Import)

	resp, err := app.Test(httptest.NewRequest("POST", "/import", nil))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
