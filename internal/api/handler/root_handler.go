package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RootHandler serves the API landing document.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type rootResponse struct {
	Message     string   `json:"message"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

// Welcome handles GET /.
func (h *RootHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message:     "welcome",
		Description: "animals API",
		Endpoints: []string{
			"GET / 200",
			"GET /cats 200",
			"GET /cats/:id 200",
			"POST /cats 201",
			"PATCH /cats/:id 200",
			"DELETE /cats/:id 204",
			"POST /users/register 201",
			"POST /users/login 200",
		},
	})
}
