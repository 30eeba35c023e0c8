package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/monraspgit/ines-stock-api/internal/application/auth"
	"github.com/monraspgit/ines-stock-api/internal/application/dto"
	"github.com/monraspgit/ines-stock-api/internal/domain"
	"github.com/monraspgit/ines-stock-api/pkg/logger"
)

// AuthHandler maneja la verificación de credenciales. No hay emisión de
// tokens ni sesiones: la respuesta exitosa es solo la proyección del usuario.
type AuthHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Validar credenciales
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "nombre, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Cuerpo inválido.",
		})
	}
	user, err := h.uc.Authenticate(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "nombre y password son requeridos",
			})
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_CREDENTIALS", Message: "Credenciales inválidas",
			})
		}
		h.log.Error().Err(err).Str("nombre", in.Nombre).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al validar credenciales",
		})
	}
	return c.JSON(dto.LoginResponse{Message: "Inicio de sesión exitoso", User: *user})
}
