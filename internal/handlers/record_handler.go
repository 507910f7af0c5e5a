package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funfungun/1-seven-0/internal/services"
)

type RecordHandler struct{ svc services.RecordService }

func NewRecordHandler(svc services.RecordService) *RecordHandler { return &RecordHandler{svc: svc} }

func (h *RecordHandler) ListRecords(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := parsePage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rs, total, err := h.svc.ListRecords(c.Request.Context(), id, services.ListRecordsInput{
		Page:    page,
		Search:  c.Query("search"),
		Order:   c.Query("order"),
		OrderBy: c.Query("orderBy"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[RecordResponse]{Data: FormatRecords(rs), Total: total})
}

func (h *RecordHandler) CreateRecord(c *gin.Context) {
	id, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	var req services.CreateRecordInput
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	rec, err := h.svc.CreateRecord(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, FormatRecord(rec))
}

func (h *RecordHandler) GetRecord(c *gin.Context) {
	groupID, err := paramUUID(c, "id", "group")
	if err != nil {
		respondError(c, err)
		return
	}
	recordID, err := paramUUID(c, "recordId", "record")
	if err != nil {
		respondError(c, err)
		return
	}
	rec, err := h.svc.GetRecord(c.Request.Context(), groupID, recordID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormatRecord(rec))
}
