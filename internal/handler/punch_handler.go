package handler

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

type PunchHandler struct {
	repo repository.PunchRepository
}

func NewPunchHandler(repo repository.PunchRepository) *PunchHandler {
	return &PunchHandler{repo: repo}
}

// Import receives the fingerprint machine export (XLSX or CSV) and stores
// every row verbatim. Dirty rows are kept on purpose: the aggregator is the
// single validation gate, so import never has to judge a row.
func (h *PunchHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required (field name: file)"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	batchID := uuid.New().String()

	var rows [][]string
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		rows, err = readXLSX(file)
	case ".csv":
		rows, err = readCSV(file)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file type, expected .xlsx or .csv"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read file: " + err.Error()})
	}

	punches := make([]model.RawPunch, 0, len(rows))
	for _, row := range rows {
		punches = append(punches, model.RawPunch{
			BatchID:   batchID,
			DeviceID:  cell(row, 0),
			FirstName: cell(row, 1),
			LastName:  cell(row, 2),
			Timestamp: cell(row, 3),
			Direction: cell(row, 4),
		})
	}

	if len(punches) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File contains no rows"})
	}

	if err := h.repo.CreateMany(punches); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store punch rows"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Punch log imported",
		"batch_id": batchID,
		"rows":     len(punches),
	})
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Machine exports carry a single sheet
	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports pad columns inconsistently
	return reader.ReadAll()
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
