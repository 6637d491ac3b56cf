package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hotel-services/internal/domain/catalog"
	"github.com/BruksfildServices01/hotel-services/internal/dto"
	"github.com/BruksfildServices01/hotel-services/internal/httperr"
	"github.com/BruksfildServices01/hotel-services/internal/httpresp"
	"github.com/BruksfildServices01/hotel-services/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/hotel-services/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	list   *ucCatalog.ListServices
	get    *ucCatalog.GetService
	mine   *ucCatalog.ListProviderServices
	create *ucCatalog.CreateService
	update *ucCatalog.UpdateService
	remove *ucCatalog.DeleteService
	image  *ucCatalog.UploadServiceImage
}

func NewServiceHandler(
	list *ucCatalog.ListServices,
	get *ucCatalog.GetService,
	mine *ucCatalog.ListProviderServices,
	create *ucCatalog.CreateService,
	update *ucCatalog.UpdateService,
	remove *ucCatalog.DeleteService,
	image *ucCatalog.UploadServiceImage,
) *ServiceHandler {
	return &ServiceHandler{
		list:   list,
		get:    get,
		mine:   mine,
		create: create,
		update: update,
		remove: remove,
		image:  image,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	ProviderID  uint     `json:"provider_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), middleware.Session(c), c.Query("providerKind"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceList(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id", "service_not_found")
	if !ok {
		return
	}

	s, err := h.get.Execute(c.Request.Context(), middleware.Session(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceDTO(*s))
}

// ======================================================
// PROVIDER
// ======================================================

func (h *ServiceHandler) ListMine(c *gin.Context) {
	services, err := h.mine.Execute(c.Request.Context(), middleware.Session(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceList(services))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Price == nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_price", "price"))
		return
	}
	if req.Duration == nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_duration", "duration"))
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.Session(c), ucCatalog.CreateServiceInput{
		ProviderID: req.ProviderID,
		Attrs: catalog.Attrs{
			Name:        req.Name,
			Description: req.Description,
			Price:       *req.Price,
			DurationMin: *req.Duration,
		},
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewServiceDTO(*s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id", "service_not_found")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.Session(c), ucCatalog.UpdateServiceInput{
		ServiceID:   id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.Duration,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceDTO(*s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id", "service_not_found")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Session(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage expects a multipart form with the file in field "image".
func (h *ServiceHandler) UploadImage(c *gin.Context) {
	id, ok := idParam(c, "id", "service_not_found")
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_image", "image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("invalid_image", "image"))
		return
	}
	defer file.Close()

	s, err := h.image.Execute(c.Request.Context(), middleware.Session(c), id, file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceDTO(*s))
}
