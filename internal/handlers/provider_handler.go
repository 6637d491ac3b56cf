package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/domain/provider"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	ucProvider "github.com/BruksfildServices01/hotel-services/internal/usecase/provider"
)

type ProviderHandler struct {
	create *ucProvider.CreateProvider
	get    *ucProvider.GetProvider
	update *ucProvider.UpdateProvider
}

func NewProviderHandler(
	create *ucProvider.CreateProvider,
	get *ucProvider.GetProvider,
	update *ucProvider.UpdateProvider,
) *ProviderHandler {
	return &ProviderHandler{
		create: create,
		get:    get,
		update: update,
	}
}

// --------- Requests ---------

type ProviderRequest struct {
	Role            string `json:"role"`
	Name            string `json:"name"`
	ContactEmail    string `json:"contact_email"`
	ServiceCategory string `json:"service_category"`
}

func (r ProviderRequest) details() provider.Details {
	return provider.Details{
		Name:            r.Name,
		ContactEmail:    r.ContactEmail,
		ServiceCategory: r.ServiceCategory,
	}
}

// --------- Handlers ---------

func (h *ProviderHandler) GetMine(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var req ProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.Session(c), ucProvider.CreateProviderInput{
		Role:    req.Role,
		Details: req.details(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProviderHandler) UpdateMine(c *gin.Context) {
	var req ProviderRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.Session(c), ucProvider.UpdateProviderInput{
		Details: req.details(),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
