package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ids-inventory-api/internal/application/dto"
	"github.com/jhoicas/ids-inventory-api/internal/application/usecase"
)

// ApprovalHandler maneja el flujo de aprobaciones (protegido).
type ApprovalHandler struct {
	uc *usecase.ApprovalUseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(uc *usecase.ApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// CreateDeleteRequest godoc
// @Summary      Solicitar baja de producto
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeleteRequestRequest  true  "Solicitud"
// @Success      201   {object}  dto.DeleteRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/approvals/delete-requests [post]
func (h *ApprovalHandler) CreateDeleteRequest(c *fiber.Ctx) error {
	var in dto.CreateDeleteRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.CreateDeleteRequest(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ResolveDeleteRequest godoc
// @Summary      Resolver solicitud de baja
// @Description  Solo pending puede moverse, y solo hacia approved o rejected. Al aprobar se ejecuta la baja lógica del producto.
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la solicitud"
// @Param        body  body  dto.ResolveRequestRequest  true  "Estado destino"
// @Success      200   {object}  dto.DeleteRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/delete-requests/{id} [put]
func (h *ApprovalHandler) ResolveDeleteRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.ResolveRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ResolveDeleteRequest(GetUserID(c), GetUsername(c), int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListDeleteRequests godoc
// @Summary      Listar solicitudes de baja
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DeleteRequestResponse
// @Router       /api/approvals/delete-requests [get]
func (h *ApprovalHandler) ListDeleteRequests(c *fiber.Ctx) error {
	out, err := h.uc.ListDeleteRequests()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateProductRequest godoc
// @Summary      Solicitar reposición de producto
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequestRequest  true  "Solicitud"
// @Success      201   {object}  dto.ProductRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/approvals/product-requests [post]
func (h *ApprovalHandler) CreateProductRequest(c *fiber.Ctx) error {
	var in dto.CreateProductRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.CreateProductRequest(GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ResolveProductRequest godoc
// @Summary      Resolver solicitud de reposición
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path   int     true   "ID de la solicitud"
// @Param        as_manager  query  bool    false  "Resolver como manager (si no, como admin)"
// @Param        body        body   dto.ResolveRequestRequest  true  "Estado destino"
// @Success      200  {object}  dto.ProductRequestResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/approvals/product-requests/{id} [put]
func (h *ApprovalHandler) ResolveProductRequest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.ResolveRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asManager := c.QueryBool("as_manager", false)
	out, err := h.uc.ResolveProductRequest(GetUserID(c), asManager, int64(id), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProductRequests godoc
// @Summary      Listar solicitudes de reposición
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductRequestResponse
// @Router       /api/approvals/product-requests [get]
func (h *ApprovalHandler) ListProductRequests(c *fiber.Ctx) error {
	out, err := h.uc.ListProductRequests()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
