package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the GET / banner route.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type rootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Index handles GET /.
//
// @Summary      API banner / basic health check
// @Tags         root
// @Produce      json
// @Success      200  {object}  rootResponse
// @Router       / [get]
func (h *RootHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Status:  "OK",
		Message: "BCR API is up and running!",
	})
}
