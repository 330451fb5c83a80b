package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/camrent/internal/apperrors"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/service/sessions"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service sessions.SessionUseCase
}

type selectCameraRequest struct {
	CameraID int `json:"camera_id" binding:"required"`
}

type submitRequest struct {
	TelegramUser *domain.TelegramUser `json:"telegram_user"`
}

func NewSessionHandler(service sessions.SessionUseCase) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.GET("/accessories", h.accessories)

	group := router.Group("/sessions")
	group.POST("", h.create)
	group.GET("/:id", h.get)
	group.POST("/:id/catalog", h.reload)
	group.POST("/:id/select", h.selectCamera)
	group.POST("/:id/back", h.back)
	group.PATCH("/:id/form", h.updateForm)
	group.POST("/:id/submit", h.submit)
	group.POST("/:id/dismiss", h.dismiss)
}

func (h *SessionHandler) accessories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Accessories())
}

func (h *SessionHandler) create(c *gin.Context) {
	sess, err := h.service.Create(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (h *SessionHandler) get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	respond(c, sess, err)
}

func (h *SessionHandler) reload(c *gin.Context) {
	sess, err := h.service.LoadCatalog(c.Request.Context(), c.Param("id"))
	respond(c, sess, err)
}

func (h *SessionHandler) selectCamera(c *gin.Context) {
	var req selectCameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.Select(c.Request.Context(), c.Param("id"), req.CameraID)
	respond(c, sess, err)
}

func (h *SessionHandler) back(c *gin.Context) {
	sess, err := h.service.Back(c.Request.Context(), c.Param("id"))
	respond(c, sess, err)
}

func (h *SessionHandler) updateForm(c *gin.Context) {
	var input sessions.FormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.UpdateForm(c.Request.Context(), c.Param("id"), input)
	respond(c, sess, err)
}

// submit takes an optional body carrying the Telegram identity of the user.
func (h *SessionHandler) submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.Submit(c.Request.Context(), c.Param("id"), req.TelegramUser)
	respond(c, sess, err)
}

func (h *SessionHandler) dismiss(c *gin.Context) {
	sess, err := h.service.Dismiss(c.Request.Context(), c.Param("id"))
	respond(c, sess, err)
}

func respond(c *gin.Context, sess *storefront.Session, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func writeError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}
