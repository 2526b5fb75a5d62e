package handler

import (
	"net/http"
	"strconv"

	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type TagCreateRequest struct {
	Name string `json:"name"`
}

type TagUpdateRequest struct {
	Name *string `json:"name"`
}

// /tags のAPI
type TagHandler struct {
	uc *usecase.TagUsecase
}

// DI
func NewTagHandler(uc *usecase.TagUsecase) *TagHandler {
	return &TagHandler{uc: uc}
}

func (h *TagHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/tags", h.list)
	e.GET("/tags/:id", h.detail)
	e.POST("/tags", h.create)
	e.PUT("/tags/:id", h.update)
	e.DELETE("/tags/:id", h.delete)
}

func (h *TagHandler) list(c echo.Context) error {
	tags, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	tag, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) create(c echo.Context) error {
	var req TagCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	tag, err := h.uc.Create(c.Request().Context(), usecase.TagCreateInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req TagUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	tag, err := h.uc.Update(c.Request().Context(), id, usecase.TagUpdateInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
