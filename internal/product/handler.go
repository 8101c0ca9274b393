package product

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/licocastillo/inventario/internal/platform/httpx"
)

// Handler exposes the product use cases as a JSON API. It owns request
// schema validation and status mapping; business rules live in the service
// and the entity.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		validate: validator.New(),
	}
}

// MountRoutes registers the product routes on the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/products", h.handleCreate)
	r.Patch("/products/{id}", h.handleUpdate)
	r.Get("/products/{id}", h.handleGet)
	r.Get("/products/sku/{sku}", h.handleGetBySKU)
	r.Get("/inventory", h.handleList)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "request body is not valid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", validationDetail(err))
		return
	}
	// Fast-fail SKU shape check at the boundary; NormalizeSKU inside the
	// entity remains authoritative.
	if strings.ContainsAny(strings.TrimSpace(req.SKU), " \t") {
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", "sku must not contain whitespace")
		return
	}

	created, err := h.service.Create(r.Context(), CreateInput{
		SKU:           strings.ToUpper(strings.TrimSpace(req.SKU)),
		Name:          req.Name,
		Category:      req.Category,
		Packaging:     req.Packaging,
		Supplier:      req.Supplier,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         req.Stock,
	})
	if err != nil {
		h.respondError(w, r, "create product", err)
		return
	}

	h.logger.Info("product created", slog.Int64("id", created.ID), slog.String("sku", created.SKU))
	httpx.JSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "product id must be a positive integer")
		return
	}

	var req UpdateProductRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Malformed Request", "request body is not valid JSON")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", validationDetail(err))
		return
	}

	in := UpdateInput{
		Name:          req.Name,
		Category:      req.Category,
		Packaging:     req.Packaging,
		Supplier:      req.Supplier,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Stock:         req.Stock,
	}
	if req.Status != nil {
		status := Status(*req.Status)
		in.Status = &status
	}

	updated, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.respondError(w, r, "update product", err)
		return
	}

	h.logger.Info("product updated", slog.Int64("id", updated.ID))
	httpx.JSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Invalid ID", "product id must be a positive integer")
		return
	}

	p, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "get product", err)
		return
	}
	if p == nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "product does not exist")
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) handleGetBySKU(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.FindBySKU(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		h.respondError(w, r, "get product by sku", err)
		return
	}
	if p == nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "product does not exist")
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	products, err := h.service.List(r.Context(), activeOnly)
	if err != nil {
		h.respondError(w, r, "list inventory", err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponseList(products))
}

// respondError translates the domain error taxonomy into HTTP statuses:
// not-found 404, duplicate 409, rule violations 422, everything else 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrDuplicateSKU):
		httpx.Problem(w, http.StatusConflict, "Duplicate SKU", err.Error())
	case errors.Is(err, ErrInvalidStock),
		errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidSKU),
		errors.Is(err, ErrInvalidStatus):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	default:
		h.logger.Error(op, slog.Any("error", err), slog.String("path", r.URL.Path))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" failed "+fe.Tag())
	}
	return strings.Join(fields, "; ")
}
