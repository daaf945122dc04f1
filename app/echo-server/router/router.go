package router

import (
	"curatorMarket/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired, rateLimit echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired, rateLimit)

	reco.GET("", handler.Recommend)
	reco.GET("/generic", handler.RecommendGeneric)
}

func SetupAdminRoutes(api *echo.Group, authRequired, adminOnly echo.MiddlewareFunc,
	reco *rest.RecommendationHandler,
	snapshots *rest.SnapshotHandler,
	customers *rest.CustomerHandler,
	catalog *rest.CatalogHandler,
) {
	admin := api.Group("/admin", authRequired, adminOnly)

	admin.POST("/snapshots/refresh", snapshots.Refresh)
	admin.GET("/snapshots/current", snapshots.Current)

	admin.POST("/customers", customers.CreateCustomer)
	admin.GET("/customers/:id", customers.GetCustomerByID)
	admin.PUT("/customers/:id/curator", customers.SetCurator)
	admin.GET("/customers/:id/recommendations", reco.RecommendForCustomer)
	admin.GET("/curators", customers.GetCurators)

	admin.POST("/categories", catalog.CreateCategory)
	admin.POST("/items", catalog.CreateItem)
}

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	api.GET("/categories", handler.GetAllCategories)
	api.GET("/items", handler.GetAllItems)
	api.GET("/items/:id", handler.GetItemByID)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	reviews := api.Group("/reviews", authRequired)

	reviews.POST("", handler.SubmitReview)
	reviews.GET("", handler.GetMyReviews)
}

func SetupPurchaseRoutes(api *echo.Group, handler *rest.PurchaseHandler, authRequired echo.MiddlewareFunc) {
	purchases := api.Group("/purchases", authRequired)

	purchases.POST("", handler.CreatePurchase)
	purchases.GET("", handler.GetMyPurchases)
}
