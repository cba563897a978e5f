package handler

import (
	"errors"
	"strconv"

	"clinic-hr-backend/internal/repository"
	"clinic-hr-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PredictHandler struct {
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
	predictor      *usecase.Predictor
}

func NewPredictHandler(employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository, predictor *usecase.Predictor) *PredictHandler {
	return &PredictHandler{employeeRepo: employeeRepo, attendanceRepo: attendanceRepo, predictor: predictor}
}

// recentDays bounds how much history goes into the prompt.
const recentDays = 30

func (h *PredictHandler) PredictLateness(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	employee, err := h.employeeRepo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	history, err := h.attendanceRepo.GetHistory(employee.DeviceID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	if len(history) > recentDays {
		history = history[:recentDays]
	}

	answer, err := h.predictor.PredictLateness(employee.Name, history)
	if err != nil {
		if errors.Is(err, usecase.ErrPredictorNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "AI prediction is not configured on this server"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Prediction failed: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"employee":   employee.Name,
		"prediction": answer,
	})
}
