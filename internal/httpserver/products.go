package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamzzakaya/nano-envanter/internal/domain"
)

// Deps carries the services the router depends on.
type Deps struct {
	ProductSvc productService
}

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, patch domain.ProductPatch) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// envelope is the wire wrapper on every products response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type productHandlers struct {
	svc    productService
	logger *log.Logger
}

func newProductHandlers(svc productService, logger *log.Logger) *productHandlers {
	return &productHandlers{svc: svc, logger: logger}
}

func (h *productHandlers) list(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: products})
}

func (h *productHandlers) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: p})
}

func (h *productHandlers) create(c *gin.Context) {
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: created})
}

func (h *productHandlers) update(c *gin.Context) {
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: "invalid request body"})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Data: updated})
}

func (h *productHandlers) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope{Success: true, Message: "product deleted"})
}

// fail maps domain errors onto the envelope: validation and conflict are 400,
// unknown ids are 404, everything else is a logged 500 with a generic message.
func (h *productHandlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrDuplicateCode),
		errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: "product not found"})
	default:
		h.logger.Printf("products api: %s %s error=%v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: "something went wrong"})
	}
}
