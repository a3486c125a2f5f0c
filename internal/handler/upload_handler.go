package handler

import (
	"net/http"

	"github.com/VISHALLkandharee/Room-Finder/internal/dto/response"
	"github.com/VISHALLkandharee/Room-Finder/internal/middleware"
	"github.com/VISHALLkandharee/Room-Finder/internal/service"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadImages godoc
// @Summary Upload listing images
// @Description Uploads a batch of images one at a time, preserving order. Oversized or non-image files are skipped; the accepted URLs survive a mid-batch storage failure.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Success 200 {object} response.Response{data=response.UploadResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/upload/images [post]
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "could not read upload form")
		return
	}

	headers := form.File["images"]
	if len(headers) == 0 {
		response.BadRequest(c, "no files in upload batch")
		return
	}

	files := make([]*service.ImageFile, 0, len(headers))
	opened := make([]interface{ Close() error }, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			response.BadRequest(c, "could not read file "+header.Filename)
			return
		}
		opened = append(opened, f)

		files = append(files, &service.ImageFile{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      f,
		})
	}

	identity := middleware.GetIdentity(c)

	result, err := h.uploadService.UploadImages(c.Request.Context(), identity, files)
	if err != nil {
		// A partial result still carries the URLs accepted before the
		// failure, so the client can keep them.
		if result != nil && len(result.URLs) > 0 {
			c.JSON(http.StatusBadGateway, response.Response{
				Success: false,
				Data:    toUploadResponse(result),
				Error: &response.ErrorInfo{
					Code:    http.StatusBadGateway,
					Message: "object storage is unavailable",
				},
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, toUploadResponse(result))
}

func toUploadResponse(result *service.UploadResult) *response.UploadResponse {
	resp := &response.UploadResponse{URLs: result.URLs}
	for _, s := range result.Skipped {
		resp.Skipped = append(resp.Skipped, response.SkippedFile{
			Name:   s.Name,
			Reason: s.Reason,
		})
	}
	return resp
}
