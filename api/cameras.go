package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/service/cameras"
	"github.com/gin-gonic/gin"
)

const (
	errLoadCameras    = "Failed to load camera data"
	errCameraNotFound = "Camera not found"
)

type CameraHandler struct {
	service cameras.CameraUseCase
}

func NewCameraHandler(service cameras.CameraUseCase) *CameraHandler {
	return &CameraHandler{service: service}
}

func (h *CameraHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *CameraHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("api: list cameras: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errLoadCameras})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CameraHandler) get(c *gin.Context) {
	// non-numeric ids cannot match any camera
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errCameraNotFound})
		return
	}
	camera, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCameraNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errCameraNotFound})
			return
		}
		log.Printf("api: get camera %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errLoadCameras})
		return
	}
	c.JSON(http.StatusOK, camera)
}
