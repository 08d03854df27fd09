package controllers

import (
	"errors"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/auth"
	"github.com/NIAZpy/fashionfinds/config"
	"github.com/NIAZpy/fashionfinds/services"
	"github.com/NIAZpy/fashionfinds/store"
)

// Controller holds the dependencies shared by all handlers.
type Controller struct {
	Cfg      *config.AppConfig
	Store    *store.Store
	Products *services.ProductService
	Posts    *services.PostService
	Auth     *auth.Verifier
	Cld      *cloudinary.Cloudinary
}

// writeServiceError translates a service error to the wire contract:
// validation and malformed identifiers get 400, missing documents 404,
// everything else 500 with the original store message attached.
func writeServiceError(c *gin.Context, err error, notFound, failed string) {
	var ve *services.ValidationError
	var oe *services.OperationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": notFound})
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid identifier"})
	case errors.Is(err, services.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database not configured"})
	case errors.As(err, &oe):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": failed + ": " + oe.Err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": failed})
	}
}
