package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
)

type GroupHandler struct{ svc services.GroupService }

func NewGroupHandler(svc services.GroupService) *GroupHandler { return &GroupHandler{svc: svc} }

// ListGroups handles GET /groups?page&limit&order&orderBy&search.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	gs, total, err := h.svc.ListGroups(c.Request.Context(), services.ListGroupsInput{
		Page:    page,
		Search:  c.Query("search"),
		Order:   c.Query("order"),
		OrderBy: c.Query("orderBy"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[GroupResponse]{Data: FormatGroups(gs), Total: total})
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req services.CreateGroupInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	g, err := h.svc.CreateGroup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FormatGroup(g))
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	g, err := h.svc.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormatGroup(g))
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.UpdateGroupInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	g, err := h.svc.UpdateGroup(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormatGroup(g))
}

type deleteGroupReq struct {
	OwnerPassword string `json:"ownerPassword"`
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	var req deleteGroupReq
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.DeleteGroup(c.Request.Context(), id, req.OwnerPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) JoinGroup(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.ParticipantInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	p, err := h.svc.JoinGroup(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FormatParticipant(p))
}

func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.ParticipantInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.svc.LeaveGroup(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GroupHandler) Like(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	g, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FormatGroup(g))
}

func (h *GroupHandler) Unlike(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	g, err := h.svc.Unlike(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormatGroup(g))
}
