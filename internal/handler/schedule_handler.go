package handler

import (
	"strconv"

	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ScheduleHandler struct {
	repo      repository.ScheduleRepository
	shiftRepo repository.ShiftRepository
}

func NewScheduleHandler(repo repository.ScheduleRepository, shiftRepo repository.ShiftRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, shiftRepo: shiftRepo}
}

type AssignScheduleRequest struct {
	EmployeeID uint   `json:"employee_id" validate:"required"`
	ShiftID    uint   `json:"shift_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Task       string `json:"task"`
}

func (h *ScheduleHandler) Assign(c *fiber.Ctx) error {
	var req AssignScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := h.shiftRepo.GetByID(req.ShiftID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Shift not found"})
	}

	// One schedule per employee per day
	if existing, err := h.repo.GetByEmployeeAndDate(req.EmployeeID, req.Date); err == nil && existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Employee already scheduled on this date"})
	}

	schedule := model.Schedule{
		EmployeeID: req.EmployeeID,
		ShiftID:    req.ShiftID,
		Date:       req.Date,
		Task:       req.Task,
	}

	if err := h.repo.Create(&schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save schedule"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Schedule saved", "data": schedule})
}

func (h *ScheduleHandler) GetByDate(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date is required"})
	}

	list, err := h.repo.GetByDate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *ScheduleHandler) GetMine(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employee_id").(float64))
	month := c.Query("month")
	year := c.Query("year")
	if month == "" || year == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month and year are required"})
	}
	if len(month) == 1 {
		month = "0" + month
	}

	list, err := h.repo.GetByEmployeeAndMonth(employeeID, year+"-"+month)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch schedules"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted"})
}

// --- Shifts ---

type ShiftRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

func (h *ScheduleHandler) CreateShift(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	shift := model.Shift{Name: req.Name, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := h.shiftRepo.Create(&shift); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Shift already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Shift created", "data": shift})
}

func (h *ScheduleHandler) GetShifts(c *fiber.Ctx) error {
	shifts, err := h.shiftRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch shifts"})
	}
	return c.JSON(fiber.Map{"data": shifts})
}

func (h *ScheduleHandler) DeleteShift(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shift id"})
	}

	if err := h.shiftRepo.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete shift"})
	}
	return c.JSON(fiber.Map{"message": "Shift deleted"})
}
