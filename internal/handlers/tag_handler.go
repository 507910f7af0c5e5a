package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
)

type TagHandler struct{ svc services.TagService }

func NewTagHandler(svc services.TagService) *TagHandler { return &TagHandler{svc: svc} }

func (h *TagHandler) ListTags(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	ts, total, err := h.svc.ListTags(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[TagResponse]{Data: FormatTags(ts), Total: total})
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, err := paramUUID(c, "id", "tag")
	if err != nil {
		respondError(c, err)
		return
	}
	t, err := h.svc.GetTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormatTag(t))
}
