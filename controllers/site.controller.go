package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/models"
)

// HealthCheck reports process and database status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dbStatus := "disconnected"
	if coll := ctrl.Store.Collection(ctrl.Cfg.ProductsCollection); coll != nil {
		if err := ctrl.Store.Ping(ctx); err == nil {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns content totals for the admin dashboard.
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalProducts, err := ctrl.Products.Count(ctx)
	if err != nil {
		writeServiceError(c, err, "Stats not found", "Failed to fetch stats")
		return
	}
	totalPosts, err := ctrl.Posts.Count(ctx)
	if err != nil {
		writeServiceError(c, err, "Stats not found", "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": models.Stats{
		TotalProducts: totalProducts,
		TotalPosts:    totalPosts,
	}})
}

// Subscribe accepts a newsletter signup. Nothing is persisted and no
// mail is sent; the mail integration is not wired up yet.
func (ctrl *Controller) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully subscribed!"})
}

// ContactForm accepts a contact form submission. Validation only, same
// as Subscribe.
func (ctrl *Controller) ContactForm(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully!"})
}

// RobotsTxt permits general crawling plus the AdSense crawler.
func (ctrl *Controller) RobotsTxt(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	content := "User-agent: *\n" +
		"Allow: /\n" +
		"Sitemap: " + scheme + "://" + c.Request.Host + "/sitemap.xml\n" +
		"User-agent: Mediapartners-Google\n" +
		"Allow: /\n"
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// AdsTxt serves ads.txt from configuration, or a placeholder advising
// how to configure it.
func (ctrl *Controller) AdsTxt(c *gin.Context) {
	content := strings.TrimSpace(ctrl.Cfg.AdsTxtContent)
	if content == "" {
		content = "# Configure ADS_TXT_CONTENT env var with your ads.txt entries\n" +
			"# Example (replace with your own):\n" +
			"# google.com, pub-1234567890123456, DIRECT, f08c47fec0942fa0"
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content+"\n"))
}

// Home renders the landing page with all products and the three latest
// posts. Store errors degrade to an empty page and are already logged.
func (ctrl *Controller) Home(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, _ := ctrl.Products.List(ctx)
	posts, _ := ctrl.Posts.List(ctx)
	if len(posts) > 3 {
		posts = posts[:3]
	}
	c.HTML(http.StatusOK, "index.html", ctrl.pageData(gin.H{
		"featured_products": products,
		"blog_posts":        posts,
	}))
}

// Blog renders the blog index.
func (ctrl *Controller) Blog(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, _ := ctrl.Posts.List(ctx)
	c.HTML(http.StatusOK, "blog.html", ctrl.pageData(gin.H{"blog_posts": posts}))
}

// BlogPost renders a single post, or bounces back to the blog index
// when the identifier does not match anything.
func (ctrl *Controller) BlogPost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := ctrl.Posts.Get(ctx, c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/blog")
		return
	}
	c.HTML(http.StatusOK, "blog_post.html", ctrl.pageData(gin.H{
		"post":     post,
		"products": []*models.Product{},
	}))
}

// Category renders all products in one category.
func (ctrl *Controller) Category(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	category := c.Param("category")
	products, _ := ctrl.Products.ListByCategory(ctx, category)
	c.HTML(http.StatusOK, "category.html", ctrl.pageData(gin.H{
		"category": titleCase(category),
		"products": products,
	}))
}

// StaticPage renders a template that needs no data beyond the ad slots.
func (ctrl *Controller) StaticPage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, ctrl.pageData(nil))
	}
}

// pageData merges the AdSense identifiers every template expects with
// handler-specific values.
func (ctrl *Controller) pageData(extra gin.H) gin.H {
	data := gin.H{
		"ADSENSE_CLIENT":         ctrl.Cfg.AdsenseClient,
		"ADSENSE_SLOT_TOP":       ctrl.Cfg.AdsenseSlotTop,
		"ADSENSE_SLOT_INARTICLE": ctrl.Cfg.AdsenseSlotInArticle,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		for j := 1; j < len(r); j++ {
			r[j] = unicode.ToLower(r[j])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
