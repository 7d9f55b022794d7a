package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/api"
	"storefront/internal/tokenstore"
)

// CatalogHandler reenvia al backend las rutas de productos y categorias con el token de la cookie.
// Los permisos de escritura los decide el backend.
type CatalogHandler struct {
	logger *zap.Logger
	client *api.Client
	cookie tokenstore.CookiePolicy
}

func NewCatalogHandler(logger *zap.Logger, client *api.Client, cookie tokenstore.CookiePolicy) *CatalogHandler {
	return &CatalogHandler{logger: logger, client: client, cookie: cookie}
}

// ListProducts maneja GET /catalog/products; la query (paginacion, filtros) se reenvia tal cual.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.get(c, withQuery(api.ProductsList, c))
}

func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	h.get(c, withQuery(api.ProductsFeatured, c))
}

func (h *CatalogHandler) ProductByID(c *gin.Context) {
	h.get(c, api.ProductByID(c.Param("id")))
}

func (h *CatalogHandler) ProductBySlug(c *gin.Context) {
	h.get(c, api.ProductBySlug(c.Param("slug")))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	h.put(c, api.UpdateProduct(c.Param("id")))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	h.delete(c, api.DeleteProduct(c.Param("id")))
}

// ListCategories maneja GET /catalog/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	h.get(c, withQuery(api.CategoriesList, c))
}

func (h *CatalogHandler) CategoryByID(c *gin.Context) {
	h.get(c, api.CategoryByID(c.Param("id")))
}

func (h *CatalogHandler) CategoryBySlug(c *gin.Context) {
	h.get(c, api.CategoryBySlug(c.Param("slug")))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	h.put(c, api.UpdateCategory(c.Param("id")))
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	h.delete(c, api.DeleteCategory(c.Param("id")))
}

func (h *CatalogHandler) requestClient(c *gin.Context) *api.Client {
	return h.client.WithTokenStore(newCookieTokenStore(c, h.cookie))
}

func (h *CatalogHandler) get(c *gin.Context, path string) {
	var raw json.RawMessage
	if err := h.requestClient(c).GetJSON(c.Request.Context(), path, &raw); err != nil {
		h.fail(c, path, err)
		return
	}
	h.respond(c, http.StatusOK, raw)
}

func (h *CatalogHandler) put(c *gin.Context, path string) {
	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var raw json.RawMessage
	if err := h.requestClient(c).PutJSON(c.Request.Context(), path, body, &raw); err != nil {
		h.fail(c, path, err)
		return
	}
	h.respond(c, http.StatusOK, raw)
}

func (h *CatalogHandler) delete(c *gin.Context, path string) {
	var raw json.RawMessage
	if err := h.requestClient(c).Delete(c.Request.Context(), path, &raw); err != nil {
		h.fail(c, path, err)
		return
	}
	h.respond(c, http.StatusOK, raw)
}

func (h *CatalogHandler) respond(c *gin.Context, status int, raw json.RawMessage) {
	if len(raw) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(status, "application/json; charset=utf-8", raw)
}

func (h *CatalogHandler) fail(c *gin.Context, path string, err error) {
	status := failureStatus(err, http.StatusBadGateway)
	if status >= http.StatusInternalServerError {
		h.logger.Warn("catalog proxy failed", zap.String("path", path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": api.DetailOr(err, http.StatusText(status))})
}

func withQuery(path string, c *gin.Context) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return path + "?" + q
	}
	return path
}
