package handler

import (
	"time"

	"clinic-hr-backend/config"
	"clinic-hr-backend/internal/model"
	"clinic-hr-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	repo repository.EmployeeRepository
}

func NewAuthHandler(repo repository.EmployeeRepository) *AuthHandler {
	return &AuthHandler{repo: repo}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// 1. Find employee by email
	employee, err := h.repo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email or password incorrect"})
	}

	if !employee.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is deactivated. Contact HR."})
	}

	// 2. Check password
	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Email or password incorrect"})
	}

	// 3. Generate JWT
	token, err := generateToken(employee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"data": fiber.Map{
			"name":       employee.Name,
			"email":      employee.Email,
			"role":       employee.Role,
			"department": employee.Department,
			"avatar":     employee.Avatar,
		},
	})
}

type RegisterRequest struct {
	DeviceID   string `json:"device_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Role       string `json:"role" validate:"omitempty,oneof=Admin Staff"`
}

// Register creates a login-capable account. Admin only; rank and file get
// their profiles from the aggregator and are upgraded here later.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	role := req.Role
	if role == "" {
		role = "Staff"
	}
	department := req.Department
	if department == "" {
		department = "Unassigned"
	}

	employee := model.Employee{
		DeviceID:   req.DeviceID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Department: department,
		Position:   req.Position,
		Role:       role,
		IsActive:   true,
	}

	if err := h.repo.Create(&employee); err != nil {
		// Most likely a duplicate device_id or email
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Employee already exists"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee registered",
		"data":    employee,
	})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	employeeID := uint(c.Locals("employee_id").(float64))

	employee, err := h.repo.FindByID(employeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	return c.JSON(fiber.Map{
		"message": "Profile fetched",
		"data":    employee,
	})
}

func generateToken(employee *model.Employee) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employee.ID,
		"device_id":   employee.DeviceID,
		"role":        employee.Role,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
