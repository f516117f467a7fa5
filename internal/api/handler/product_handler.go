package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pharmacy_store/internal/app/service"
	"pharmacy_store/internal/common"
	"pharmacy_store/internal/domain/model"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(ps *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProducts)                // GET /products
	r.Post("/", h.createProduct)              // POST /products
	r.Put("/{productID}", h.updateProduct)    // PUT /products/{id}
	r.Delete("/{productID}", h.deleteProduct) // DELETE /products/{id}
}

type updateProductResponse struct {
	Message        string         `json:"message"`
	UpdatedProduct *model.Product `json:"updatedProduct"`
}

type deleteProductResponse struct {
	Message        string         `json:"message"`
	DeletedProduct *model.Product `json:"deletedProduct"`
}

func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.productService.CreateProduct(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithMessage(w, http.StatusCreated, "Product added successfully")
}

func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req service.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	product, err := h.productService.UpdateQuantity(r.Context(), productID, req)
	if err != nil {
		switch status := common.HTTPStatusFromError(err); status {
		case http.StatusBadRequest:
			common.RespondWithMessage(w, status, "Quantity is required to update product")
		case http.StatusNotFound:
			common.RespondWithMessage(w, status, "Product not found")
		default:
			common.RespondWithError(w, status, err.Error())
		}
		return
	}
	common.RespondWithJSON(w, http.StatusOK, updateProductResponse{
		Message:        "Product updated successfully",
		UpdatedProduct: product,
	})
}

func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.productService.DeleteProduct(r.Context(), productID)
	if err != nil {
		status := common.HTTPStatusFromError(err)
		if status == http.StatusNotFound {
			common.RespondWithMessage(w, status, "Product not found")
			return
		}
		common.RespondWithError(w, status, err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, deleteProductResponse{
		Message:        "Product deleted successfully",
		DeletedProduct: product,
	})
}
