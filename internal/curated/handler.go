package curated

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ezrarag/Stamped-in-style/internal/storage"
)

type Handler struct {
	repo    *Repository
	uploads *storage.R2Client
}

func NewHandler(repo *Repository, uploads *storage.R2Client) *Handler {
	return &Handler{repo: repo, uploads: uploads}
}

//
// --------------------------------------------------
// GET /curated-items
// --------------------------------------------------
//

func (h *Handler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.repo.List(c.Request.Context(), Filters{
			Category: c.Query("category"),
			Type:     c.Query("type"),
			Cost:     c.Query("cost"),
			Distance: c.Query("distance"),
			Search:   c.Query("search"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch curated items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

//
// --------------------------------------------------
// POST /curated-items (admin)
// --------------------------------------------------
//

func (h *Handler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		var item Item
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if item.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		if err := h.repo.Create(c.Request.Context(), &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create curated item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

//
// --------------------------------------------------
// POST /curated-items/:id/image (admin)
// --------------------------------------------------
//

func (h *Handler) UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var itemID int
		if _, err := fmt.Sscanf(c.Param("id"), "%d", &itemID); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
			return
		}
		defer file.Close()

		key := fmt.Sprintf("curated/%d/%s", itemID, fileHeader.Filename)
		url, err := h.uploads.Upload(c.Request.Context(), key, file)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}

		if err := h.repo.SetImageURL(c.Request.Context(), itemID, url); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image url"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_url": url})
	}
}
