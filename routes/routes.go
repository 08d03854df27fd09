package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/auth"
	"github.com/NIAZpy/fashionfinds/config"
	"github.com/NIAZpy/fashionfinds/controllers"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, cfg *config.AppConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsAllowedOrigins) == 1 && cfg.CorsAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.LoadHTMLGlob("templates/*.html")
	r.Static("/static", "./static")

	requireAdmin := auth.RequireAdmin(ctrl.Auth)

	// Site pages
	r.GET("/", ctrl.Home)
	r.GET("/blog", ctrl.Blog)
	r.GET("/blog/:id", ctrl.BlogPost)
	r.GET("/categories/:category", ctrl.Category)
	r.GET("/about", ctrl.StaticPage("about.html"))
	r.GET("/contact", ctrl.StaticPage("contact.html"))
	r.GET("/disclaimer", ctrl.StaticPage("disclaimer.html"))
	r.GET("/privacy", ctrl.StaticPage("privacy.html"))
	r.GET("/admin", requireAdmin, ctrl.StaticPage("admin.html"))
	r.GET("/robots.txt", ctrl.RobotsTxt)
	r.GET("/ads.txt", ctrl.AdsTxt)

	api := r.Group("/api")
	{
		api.GET("/health", ctrl.HealthCheck)
		api.POST("/login", ctrl.Login)
		api.GET("/stats", requireAdmin, ctrl.GetStats)

		api.GET("/products", ctrl.GetProducts)
		api.POST("/products", requireAdmin, ctrl.CreateProduct)
		api.PUT("/products/:id", requireAdmin, ctrl.UpdateProduct)
		api.DELETE("/products/:id", requireAdmin, ctrl.DeleteProduct)

		api.GET("/posts", ctrl.GetPosts)
		api.POST("/posts", requireAdmin, ctrl.CreatePost)
		api.PUT("/posts/:id", requireAdmin, ctrl.UpdatePost)
		api.DELETE("/posts/:id", requireAdmin, ctrl.DeletePost)

		api.POST("/subscribe", ctrl.Subscribe)
		api.POST("/contact", ctrl.ContactForm)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
