package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/animals-api/internal/core/domain"
	"github.com/pawprint/animals-api/internal/core/ports"
)

const msgCatNotFound = "Unable to locate cat"

// CatHandler handles HTTP requests for cat operations.
type CatHandler struct {
	service ports.CatService
}

func NewCatHandler(service ports.CatService) *CatHandler {
	return &CatHandler{service: service}
}

// Index handles GET /cats.
//
// @Summary      List all cats
// @Tags         cats
// @Produce      json
// @Success      200  {array}   domain.Cat
// @Failure      500  {object}  errorResponse
// @Router       /cats [get]
func (h *CatHandler) Index(c echo.Context) error {
	cats, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		// cause is logged by the service; the client gets a stable message
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "error retrieving cats"})
	}
	if cats == nil {
		cats = []domain.Cat{}
	}
	return c.JSON(http.StatusOK, cats)
}

// Show handles GET /cats/:id.
//
// @Summary      Get a cat by id
// @Tags         cats
// @Produce      json
// @Param        id   path      int  true  "Cat id"
// @Success      200  {object}  showCatResponse
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [get]
func (h *CatHandler) Show(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
	}

	cat, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCatNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
		}
		return err
	}
	return c.JSON(http.StatusOK, showCatResponse{CatData: *cat})
}

// Create handles POST /cats.
//
// @Summary      Create a new cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Param        body  body      createCatRequest  true  "Cat details"
// @Success      201   {object}  createCatResponse
// @Failure      400   {object}  errorResponse
// @Router       /cats [post]
func (h *CatHandler) Create(c echo.Context) error {
	var req createCatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cat, err := h.service.Create(c.Request().Context(), ports.CreateCatInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Habitat:     req.Habitat,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, createCatResponse{Data: *cat})
}

// Update handles PATCH and PUT /cats/:id. Fields absent from the payload keep
// their stored values.
//
// @Summary      Update a cat
// @Tags         cats
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Cat id"
// @Param        body  body      updateCatRequest  true  "Fields to change"
// @Success      200   {object}  domain.Cat
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cats/{id} [patch]
func (h *CatHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
	}

	var req updateCatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	cat, err := h.service.Update(c.Request().Context(), id, ports.UpdateCatInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Habitat:     req.Habitat,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCatNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, cat)
}

// Destroy handles DELETE /cats/:id.
//
// @Summary      Delete a cat
// @Tags         cats
// @Param        id  path  int  true  "Cat id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /cats/{id} [delete]
func (h *CatHandler) Destroy(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCatNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgCatNotFound})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
