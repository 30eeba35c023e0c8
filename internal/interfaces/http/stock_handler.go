package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/monraspgit/ines-stock-api/internal/application/dto"
	"github.com/monraspgit/ines-stock-api/internal/application/stock"
	"github.com/monraspgit/ines-stock-api/internal/domain"
	"github.com/monraspgit/ines-stock-api/pkg/logger"
)

// StockHandler maneja las peticiones HTTP de la tabla stock. Los fallos del
// store se loguean con detalle en el servidor y al cliente solo le llega un
// mensaje genérico.
type StockHandler struct {
	uc  *stock.UseCase
	log *logger.Logger
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *stock.UseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar todo el stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.StockItemResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/ [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("listar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al obtener datos de la base de datos",
		})
	}
	return c.JSON(items)
}

// BulkInsert godoc
// @Summary      Inserción masiva de stock
// @Description  Inserta todas las filas en una sola transacción: o persisten todas o ninguna.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      []dto.StockItemRequest  true  "array no vacío de elementos de stock"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/ [post]
func (h *StockHandler) BulkInsert(c *fiber.Ctx) error {
	var in []dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequestArray(c)
	}
	if err := h.uc.BulkInsert(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequestArray(c)
		}
		h.log.Error().Err(err).Int("filas", len(in)).Msg("inserción masiva de stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al insertar datos en la base de datos",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Datos guardados exitosamente"})
}

// BulkUpdate godoc
// @Summary      Actualización masiva por código de insumo
// @Description  Cada fila se actualiza por codigoInsumo dentro de una sola transacción.
//
//	Un código inexistente afecta cero filas y sigue siendo éxito.
//
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      []dto.StockItemRequest  true  "array no vacío de elementos parciales"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/update [put]
func (h *StockHandler) BulkUpdate(c *fiber.Ctx) error {
	var in []dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequestArray(c)
	}
	if err := h.uc.BulkUpdate(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequestArray(c)
		}
		h.log.Error().Err(err).Int("filas", len(in)).Msg("actualización masiva de stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al actualizar datos en la base de datos",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Datos actualizados exitosamente"})
}

// DeleteAll godoc
// @Summary      Eliminar todo el stock
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/deleteAll [delete]
func (h *StockHandler) DeleteAll(c *fiber.Ctx) error {
	if err := h.uc.DeleteAll(c.Context()); err != nil {
		h.log.Error().Err(err).Msg("eliminar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al eliminar los datos de la base de datos",
		})
	}
	return c.JSON(dto.MessageResponse{Message: "Todos los datos de stock fueron eliminados exitosamente"})
}

// Filter godoc
// @Summary      Filtrar stock por bimensual y week
// @Tags         stock
// @Produce      json
// @Param        bimensual  query  string  true  "substring a buscar en bimensual"
// @Param        week       query  string  true  "valor exacto de week"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/filter [get]
func (h *StockHandler) Filter(c *fiber.Ctx) error {
	bimensual := c.Query("bimensual")
	week := c.Query("week")
	items, err := h.uc.FilterByWeekAndCategory(c.Context(), bimensual, week)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "Los parámetros bimensual y week son requeridos.",
			})
		}
		h.log.Error().Err(err).Str("bimensual", bimensual).Str("week", week).Msg("filtrar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al obtener datos de la base de datos",
		})
	}
	return c.JSON(items)
}

// Add godoc
// @Summary      Insertar un registro de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body      dto.StockItemRequest  true  "elemento de stock (la mayoría de campos opcionales)"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock/add [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Cuerpo inválido.",
		})
	}
	id, err := h.uc.InsertOne(c.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Str("codigoInsumo", in.CodigoInsumo).Msg("insertar stock")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error al insertar datos en la base de datos",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Message: "Registro agregado exitosamente", ID: id})
}

func badRequestArray(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "VALIDATION", Message: "Debe enviar un array con al menos un registro.",
	})
}
