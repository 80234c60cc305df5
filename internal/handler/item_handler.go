package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/item の公開API
type ItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewItemHandler(uc *usecase.ItemUsecase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/item")

	g.GET("", h.list)
	g.GET("/name/:name", h.listByName)
	g.GET("/:id", h.detail)
}

func (h *ItemHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) listByName(c echo.Context) error {
	out, err := h.uc.SearchByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
