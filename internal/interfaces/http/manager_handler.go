package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/manager-api/internal/application/dto"
	"github.com/jhoicas/manager-api/internal/application/manager"
)

const msgIDsRequired = "Please provide array of manager IDs"

// ManagerHandler expone el registro de managers (todas las rutas protegidas).
type ManagerHandler struct {
	uc     *manager.ManagerUseCase
	export *manager.ExportUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *manager.ManagerUseCase, export *manager.ExportUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar managers
// @Description  page y limit no positivos caen a 1 y 10.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ManagerListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manager [get]
func (h *ManagerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryInt("page", dto.DefaultPage), c.QueryInt("limit", dto.DefaultLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Paginate godoc
// @Summary      Listar managers paginados
// @Description  Rechaza page o limit no positivos.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ManagerPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/manager/pagination [get]
func (h *ManagerHandler) Paginate(c *fiber.Ctx) error {
	out, err := h.uc.Paginate(c.UserContext(), c.QueryInt("page", dto.DefaultPage), c.QueryInt("limit", dto.DefaultLimit))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar managers
// @Description  Subcadena literal, sin distinguir mayúsculas, en name, email o phone.
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {array}   dto.ManagerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/manager/search [get]
func (h *ManagerHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear manager
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateManagerRequest  true  "name, email, salary, designation; phone y status opcionales"
// @Success      201  {object}  dto.ManagerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/manager [post]
func (h *ManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar manager
// @Description  Sólo se modifican los campos enviados.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del manager"
// @Param        body  body  dto.UpdateManagerRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.ManagerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{id} [put]
func (h *ManagerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgInvalidBody})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar manager
// @Tags         manager
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del manager"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/manager/{id} [delete]
func (h *ManagerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Manager deleted successfully"})
}

// DeleteMany godoc
// @Summary      Eliminar varios managers
// @Description  Ids inexistentes se ignoran; deletedCount refleja lo realmente borrado.
// @Tags         manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DeleteManyRequest  true  "ids"
// @Success      200  {object}  dto.DeleteManyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/manager/delete-multiple [post]
func (h *ManagerHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.DeleteManyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgIDsRequired})
	}
	out, err := h.uc.DeleteMany(c.UserContext(), in.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar managers a PDF
// @Description  Sin q exporta todos; con q, sólo las coincidencias de la búsqueda.
// @Tags         manager
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        q  query  string  false  "Texto a buscar"
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/manager/export [get]
func (h *ManagerHandler) Export(c *fiber.Ctx) error {
	pdf, filename, err := h.export.RosterPDF(c.UserContext(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
