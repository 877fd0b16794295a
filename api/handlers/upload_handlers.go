package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atelier-cms/cdn"
	"atelier-cms/internal/logger"
)

// UploadHandler godoc
// @Summary      Upload an image
// @Description  Forwards the image to the configured CDN and returns its URL
// @Tags         admin
// @Accept       multipart/form-data
// @Param        image   formData  file    true   "Image file"
// @Param        folder  formData  string  false  "Target folder"
// @Produce      json
// @Success      201  {object}  cdn.UploadResult
// @Security     BearerAuth
// @Router       /admin/upload [post]
func UploadHandler(uploader cdn.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer file.Close()

		result, err := uploader.Upload(c.Request.Context(), fileHeader.Filename, file, c.PostForm("folder"))
		if err != nil {
			logger.Log.Errorf("image upload failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
