package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas de sesion y catalogo.
func NewRouter(
	logger *zap.Logger,
	sessionH *SessionHandler,
	currencyH *CurrencyHandler,
	catalogH *CatalogHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	session := r.Group("/session")
	session.GET("", sessionH.Status)
	session.POST("/login", sessionH.Login)
	session.POST("/logout", sessionH.Logout)
	session.POST("/refresh", sessionH.Refresh)
	session.POST("/register/personal", sessionH.RegisterPersonal)
	session.POST("/register/business", sessionH.RegisterBusiness)
	session.GET("/me", sessionH.Me)
	session.PUT("/me", sessionH.UpdateMe)
	session.POST("/verify-email", sessionH.VerifyEmail)
	session.POST("/resend-verification", sessionH.ResendVerification)

	r.GET("/currencies", currencyH.List)
	r.GET("/currencies/format", currencyH.Format)

	catalog := r.Group("/catalog")
	catalog.GET("/products", catalogH.ListProducts)
	catalog.GET("/products/featured", catalogH.FeaturedProducts)
	catalog.GET("/products/id/:id", catalogH.ProductByID)
	catalog.GET("/products/slug/:slug", catalogH.ProductBySlug)
	catalog.PUT("/products/id/:id", catalogH.UpdateProduct)
	catalog.DELETE("/products/id/:id", catalogH.DeleteProduct)
	catalog.GET("/categories", catalogH.ListCategories)
	catalog.GET("/categories/id/:id", catalogH.CategoryByID)
	catalog.GET("/categories/slug/:slug", catalogH.CategoryBySlug)
	catalog.PUT("/categories/id/:id", catalogH.UpdateCategory)
	catalog.DELETE("/categories/id/:id", catalogH.DeleteCategory)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
