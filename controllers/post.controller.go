package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NIAZpy/fashionfinds/models"
)

// GetPosts handles fetching all blog posts, newest first.
func (ctrl *Controller) GetPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := ctrl.Posts.List(ctx)
	if err != nil {
		writeServiceError(c, err, "Post not found", "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost handles adding a new blog post.
func (ctrl *Controller) CreatePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON payload"})
		return
	}

	post, err := ctrl.Posts.Create(ctx, in)
	if err != nil {
		writeServiceError(c, err, "Post not found", "Failed to add post")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post added successfully",
		"post":    post,
	})
}

// UpdatePost handles replacing a post's fields.
func (ctrl *Controller) UpdatePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON payload"})
		return
	}

	post, err := ctrl.Posts.Update(ctx, c.Param("id"), in)
	if err != nil {
		writeServiceError(c, err, "Post not found", "Failed to update post")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost handles removing a post.
func (ctrl *Controller) DeletePost(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.Posts.Delete(ctx, c.Param("id")); err != nil {
		writeServiceError(c, err, "Post not found", "Failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}
