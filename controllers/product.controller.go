package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/models"
)

// GetProducts handles fetching all products, newest first.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.Products.List(ctx)
	if err != nil {
		writeServiceError(c, err, "Product not found", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// CreateProduct handles adding a new product.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON payload"})
		return
	}
	ctrl.uploadProductImage(&in)

	product, err := ctrl.Products.Create(ctx, in)
	if err != nil {
		writeServiceError(c, err, "Product not found", "Failed to add product")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product added successfully",
		"product": product,
	})
}

// UpdateProduct handles replacing a product's fields.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON payload"})
		return
	}
	ctrl.uploadProductImage(&in)

	product, err := ctrl.Products.Update(ctx, c.Param("id"), in)
	if err != nil {
		writeServiceError(c, err, "Product not found", "Failed to update product")
		return
	}
	// The "post" key is kept for compatibility with the existing admin UI.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"post":    product,
	})
}

// DeleteProduct handles removing a product.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Products.Delete(ctx, c.Param("id")); err != nil {
		writeServiceError(c, err, "Product not found", "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// uploadProductImage uploads an inline base64 image to Cloudinary when
// one was sent and an uploader is configured, replacing the image URL.
func (ctrl *Controller) uploadProductImage(in *models.ProductInput) {
	if in.ImageBase64 == "" || ctrl.Cld == nil {
		return
	}
	result, err := ctrl.Cld.Upload.Upload(
		context.Background(),
		in.ImageBase64,
		uploader.UploadParams{Folder: "fashionfinds/products"},
	)
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		return
	}
	in.Image = result.SecureURL
	in.ImageBase64 = ""
}
