package handler

import (
	"bufio"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/wedwisely-server/internal/api/http/respond"
	"github.com/dtroode/wedwisely-server/internal/apierrors"
	"github.com/dtroode/wedwisely-server/internal/model"
)

const avatarFormField = "avatar"

// Avatar serves profile pictures kept in object storage.
type Avatar struct {
	service        UserService
	contextManager model.ContextManager
	responder      *respond.Responder
}

func NewAvatar(service UserService, contextManager model.ContextManager, responder *respond.Responder) *Avatar {
	return &Avatar{
		service:        service,
		contextManager: contextManager,
		responder:      responder,
	}
}

// Upload stores the multipart "avatar" file for the caller. The content type
// is sniffed from the file itself.
func (h *Avatar) Upload(c *gin.Context) {
	actor, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.responder.Error(c, apierrors.NewErrAuthenticationRequired())
		return
	}

	header, err := c.FormFile(avatarFormField)
	if err != nil {
		h.responder.Error(c, apierrors.NewErrValidation("Avatar file is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 512)
	head, _ := reader.Peek(512)
	contentType := http.DetectContentType(head)

	if err := h.service.UploadAvatar(c.Request.Context(), actor.ID, reader, header.Size, contentType); err != nil {
		h.responder.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Get streams the avatar of the user named by :id.
func (h *Avatar) Get(c *gin.Context) {
	obj, err := h.service.GetAvatar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	defer obj.Body.Close()

	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, map[string]string{
		"Cache-Control": "private, max-age=300",
	})
}

func (h *Avatar) Delete(c *gin.Context) {
	actor, ok := h.contextManager.GetUserFromContext(c.Request.Context())
	if !ok {
		h.responder.Error(c, apierrors.NewErrAuthenticationRequired())
		return
	}

	if err := h.service.DeleteAvatar(c.Request.Context(), actor.ID); err != nil {
		h.responder.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
