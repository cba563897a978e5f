package handler

import (
	"fmt"

	"clinic-hr-backend/internal/mailer"
	"clinic-hr-backend/internal/repository"
	"clinic-hr-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	punchRepo      repository.PunchRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	mail           *mailer.Mailer
}

func NewAttendanceHandler(punchRepo repository.PunchRepository, employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository, mail *mailer.Mailer) *AttendanceHandler {
	return &AttendanceHandler{
		punchRepo:      punchRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		mail:           mail,
	}
}

// Aggregate runs one full aggregation pass: read everything, fold in memory,
// write once. The frontend disables the button while this is in flight, so
// only one run is expected at a time.
func (h *AttendanceHandler) Aggregate(c *fiber.Ctx) error {
	// 1. Read all raw punches
	punches, err := h.punchRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read punch rows"})
	}

	// 2. Read known device IDs for profile discovery
	ids, err := h.employeeRepo.GetAllDeviceIDs()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read employee ids"})
	}
	knownIDs := make(map[string]bool, len(ids))
	for _, id := range ids {
		knownIDs[id] = true
	}

	// 3. Fold
	result := usecase.Aggregate(punches, knownIDs)

	// 4. Commit in one transaction; a store rejection leaves nothing behind
	if err := h.attendanceRepo.SaveAggregateRun(result.Records, result.NewEmployees); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save aggregation run: " + err.Error()})
	}

	// 5. Mail the summary, best effort
	if h.mail != nil && h.mail.Enabled() {
		if err := h.mail.SendRunSummary(len(result.Records), len(result.NewEmployees), result.ErrorCount); err != nil {
			fmt.Println("Warning: failed to send run summary mail:", err)
		}
	}

	return c.JSON(fiber.Map{
		"message":       "Aggregation finished",
		"processed":     len(result.Records),
		"new_employees": len(result.NewEmployees),
		"errors":        result.ErrorCount,
	})
}

// GetHistory returns the caller's own attendance, newest first.
func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	deviceID, ok := c.Locals("device_id").(string)
	if !ok || deviceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No device id on this account"})
	}

	history, err := h.attendanceRepo.GetHistory(deviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch history"})
	}
	return c.JSON(fiber.Map{"data": history})
}

// GetMonthly returns one employee's records for ?month=MM&year=YYYY.
func (h *AttendanceHandler) GetMonthly(c *fiber.Ctx) error {
	deviceID := c.Query("device_id")
	month := c.Query("month")
	year := c.Query("year")

	if deviceID == "" || month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "device_id, month and year are required"})
	}
	if len(month) == 1 {
		month = "0" + month
	}

	list, err := h.attendanceRepo.GetByDeviceAndMonth(deviceID, year+"-"+month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch records"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// GetDaily returns every record for one date (admin table view).
func (h *AttendanceHandler) GetDaily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}

	list, err := h.attendanceRepo.GetByDate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch records"})
	}
	return c.JSON(fiber.Map{"data": list})
}
