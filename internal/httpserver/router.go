package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()))
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	catalogH := &catalogHandler{svc: deps.Catalog, logger: logger}
	cartH := &cartHandler{store: deps.Carts, catalog: deps.Catalog, logger: logger}
	checkoutH := &checkoutHandler{svc: deps.Checkout, carts: deps.Carts}
	contactH := &contactHandler{svc: deps.Contact}
	proxyH := newProxyHandler(deps.ProxyAllowedHosts, logger)

	api := router.Group("/api")
	{
		api.GET("/products/:category", catalogH.list)
		api.GET("/products/:category/slugs", catalogH.listSlugs)
		api.GET("/product/:slug", catalogH.getBySlug)

		cartGroup := api.Group("/cart", cartTokenMiddleware())
		{
			cartGroup.GET("", cartH.get)
			cartGroup.POST("/items", cartH.addItem)
			cartGroup.PATCH("/items/:productID", cartH.updateItem)
			cartGroup.DELETE("/items/:productID", cartH.removeItem)
			cartGroup.DELETE("", cartH.clear)
		}

		api.POST("/checkout", cartTokenMiddleware(), checkoutH.placeOrder)
		api.POST("/contact", contactH.submit)
		api.GET("/proxy", proxyH.serve)
	}

	return router
}
