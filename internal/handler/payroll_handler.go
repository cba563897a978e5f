package handler

import (
	"clinic-hr-backend/internal/repository"
	"clinic-hr-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PayrollHandler struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
}

func NewPayrollHandler(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) *PayrollHandler {
	return &PayrollHandler{employeeRepo: employeeRepo, attendanceRepo: attendanceRepo}
}

// Estimate computes the monthly pay estimate for every active employee
// from the aggregated attendance feed.
func (h *PayrollHandler) Estimate(c *fiber.Ctx) error {
	month := c.Query("month")
	year := c.Query("year")
	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month and year are required"})
	}
	if len(month) == 1 {
		month = "0" + month
	}

	employees, err := h.employeeRepo.GetAllActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}

	records, err := h.attendanceRepo.GetByMonth(year + "-" + month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	estimates := usecase.EstimatePayroll(employees, records)

	return c.JSON(fiber.Map{
		"month": year + "-" + month,
		"data":  estimates,
	})
}
