package upload_controller

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/torrent-game-platform/config"
	"github.com/pr-poehali-dev/torrent-game-platform/models"
	"github.com/pr-poehali-dev/torrent-game-platform/services"
)

const maxPosterSize = 5 << 20 // 5 MB

var allowedPosterExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadPoster godoc
// @Summary Upload a poster image
// @Description Stores a poster on Cloudinary and returns its public URL for the torrent form.
// @Tags Admin - Uploads
// @Accept mpfd
// @Produce json
// @Param poster formData file true "Poster image (jpg, png or webp, up to 5 MB)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "No file or unsupported format"
// @Failure 503 {object} models.ApiResponse "Uploads not configured"
// @Router /api/v1/admin/posters [post]
func UploadPoster(c *gin.Context) {
	uploader := services.GetCloudinaryService()
	if uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Poster uploads are not configured"))
		return
	}

	header, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Poster file is required"))
		return
	}
	if header.Size > maxPosterSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Poster must be 5 MB or smaller"))
		return
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedPosterExts[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Poster must be a jpg, png or webp image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read the uploaded file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	url, err := uploader.UploadPoster(ctx, file, header.Filename)
	if err != nil {
		log.Printf("[admin.posters] upload %q failed: %v", header.Filename, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload poster"))
		return
	}

	log.Printf("[admin.posters] uploaded %q", header.Filename)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Poster uploaded", gin.H{"url": url}))
}
