package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type ModifyCartRequest struct {
	Username string `json:"username"`
	ItemID   int64  `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cart")

	g.POST("/addToCart", h.addToCart)
	g.POST("/removeFromCart", h.removeFromCart)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.ModifyCartInput{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeFromCart(c echo.Context) error {
	var req ModifyCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RemoveItem(c.Request().Context(), usecase.ModifyCartInput{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
