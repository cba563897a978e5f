package handler

import (
	"strconv"
	"time"

	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	repo           repository.LeaveRepository
	employeeRepo   repository.EmployeeRepository
	attendanceRepo repository.AttendanceRepository
}

func NewLeaveHandler(repo repository.LeaveRepository, employeeRepo repository.EmployeeRepository, attendanceRepo repository.AttendanceRepository) *LeaveHandler {
	return &LeaveHandler{repo: repo, employeeRepo: employeeRepo, attendanceRepo: attendanceRepo}
}

type LeaveRequestBody struct {
	LeaveType string `json:"leave_type" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employee_id").(float64))

	var req LeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.EndDate < req.StartDate {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date is before start_date"})
	}

	leave := model.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Reason:     req.Reason,
		Status:     "PENDING",
	}

	if err := h.repo.Create(&leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit leave request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Leave request submitted", "data": leave})
}

func (h *LeaveHandler) GetMine(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employee_id").(float64))

	list, err := h.repo.GetByEmployee(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch leave requests"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *LeaveHandler) GetPending(c *fiber.Ctx) error {
	list, err := h.repo.GetPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch pending requests"})
	}
	return c.JSON(fiber.Map{"data": list})
}

// Approve marks the request approved and merges the leave flag onto every
// day in its range. The merge only touches is_on_leave/leave_type, so
// punch-derived fields written by the aggregator stay intact (and a later
// aggregation re-run will not knock the flag back off).
func (h *LeaveHandler) Approve(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.Status != "PENDING" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Request already processed"})
	}

	employee, err := h.employeeRepo.FindByID(leave.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	start, err1 := time.Parse("2006-01-02", leave.StartDate)
	end, err2 := time.Parse("2006-01-02", leave.EndDate)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Leave request has invalid dates"})
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if err := h.attendanceRepo.MergeLeave(employee.DeviceID, d.Format("2006-01-02"), leave.LeaveType); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark leave days"})
		}
	}

	leave.Status = "APPROVED"
	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}

	return c.JSON(fiber.Map{"message": "Leave approved", "data": leave})
}

func (h *LeaveHandler) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request id"})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.Status != "PENDING" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Request already processed"})
	}

	leave.Status = "REJECTED"
	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}

	return c.JSON(fiber.Map{"message": "Leave rejected", "data": leave})
}
