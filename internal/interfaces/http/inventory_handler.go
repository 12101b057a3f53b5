package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-hospitalario/internal/application/dto"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/inventory"
	"github.com/jhoicas/Inventario-hospitalario/internal/application/session"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain"
	"github.com/jhoicas/Inventario-hospitalario/internal/domain/entity"
)

// InventoryHandler expone la tabla de inventario, el CRUD de la copia de
// trabajo y la exportación de reportes.
type InventoryHandler struct {
	sessions  *session.UseCase
	inventory *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(sessions *session.UseCase, inv *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{sessions: sessions, inventory: inv}
}

// Table godoc
// @Summary      Tabla de inventario del tenant activo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) Table(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	table, err := h.inventory.Table(c.Context(), user)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(table)
}

// AddItem godoc
// @Summary      Agregar un ítem a la copia de trabajo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.inventory.AddItem(c.Context(), user, in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Reemplazar un ítem de la copia de trabajo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID del ítem"
// @Param        body  body  dto.ItemRequest  true  "ítem"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	id, err := itemID(c)
	if err != nil {
		return inventoryError(c, err)
	}
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.inventory.UpdateItem(c.Context(), user, id, in)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar un ítem de la copia de trabajo
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  int  true  "ID del ítem"
// @Success      204
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) RemoveItem(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	id, err := itemID(c)
	if err != nil {
		return inventoryError(c, err)
	}
	if err := h.inventory.RemoveItem(c.Context(), user, id); err != nil {
		return inventoryError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reload godoc
// @Summary      Descartar la copia de trabajo y recargar del proveedor
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/reload [post]
func (h *InventoryHandler) Reload(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	table, err := h.inventory.Reload(c.Context(), user)
	if err != nil {
		return inventoryError(c, err)
	}
	return c.JSON(table)
}

// Export godoc
// @Summary      Exportar la tabla actual como documento descargable
// @Tags         inventory
// @Security     Bearer
// @Param        format  query  string  true  "pdf | xlsx"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	user, err := h.activeUser(c)
	if err != nil {
		return inventoryError(c, err)
	}
	formatName := c.Query("format", "pdf")
	doc, contentType, ext, err := h.inventory.Export(c.Context(), user, formatName)
	if err != nil {
		return inventoryError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=inventario.%s", ext))
	return c.Send(doc)
}

// activeUser resuelve el usuario del claim contra la base de datos. El
// hospital vigente es el del usuario, no el del token.
func (h *InventoryHandler) activeUser(c *fiber.Ctx) (*entity.User, error) {
	user, err := h.sessions.UserByID(GetUserID(c))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func itemID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

// inventoryError traduce los errores de dominio a códigos HTTP.
func inventoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
	case errors.Is(err, domain.ErrNoInventory):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_INVENTORY", Message: "el hospital no tiene inventario"})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "ítem no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ID", Message: "ya existe un ítem con ese ID"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrStaleSnapshot):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALE_SNAPSHOT", Message: "el tenant cambió durante la carga, reintente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
