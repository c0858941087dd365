package studies

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"study-backend/internal/content"
	"study-backend/internal/shared/server/middleware"
	"study-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches study routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.POST("/export", h.export)
	rg.GET("/studies", h.list)
	rg.GET("/studies/:id", h.get)
	rg.DELETE("/studies/:id", h.delete)
	rg.GET("/studies/:id/exports/:name", h.download)
	rg.GET("/guidelines", h.guidelines)
	rg.GET("/guidelines/:section", h.guideline)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set(middleware.SectionKey, req.Section)

	result, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		var unknown *content.UnknownSectionError
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Section is required", nil)
		case errors.As(err, &unknown):
			respond.Error(c, http.StatusBadRequest, "unknown_section", err.Error(), gin.H{"section": unknown.Section})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate content", nil)
		}
		return
	}

	resp := GenerateResponse{Success: true, Content: result.Content}
	if result.StudyID != "" {
		c.Set(middleware.StudyIDKey, result.StudyID)
		id := result.StudyID
		resp.StudyID = &id
	}
	respond.OK(c, resp)
}

func (h *Handler) export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	studyID := content.InputFromMap(req.Data).StudyID
	if studyID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Study ID is required", nil)
		return
	}
	c.Set(middleware.StudyIDKey, studyID)

	result, err := h.Svc.Export(c.Request.Context(), studyID, req.Sections)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Study not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to export study", nil)
		}
		return
	}

	if result.StorageKey != "" {
		c.Header("X-Export-Key", result.StorageKey)
	}
	c.Header("ETag", `"`+result.Checksum+`"`)
	respond.Attachment(c, result.FileName, "application/pdf", result.Data)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.StudyIDKey, id)

	study, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.studyError(c, err, "failed to fetch study")
		return
	}
	respond.OK(c, gin.H{"success": true, "study": study.ToResponse()})
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	studies, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list studies", nil)
		return
	}

	resp := make([]StudyResponse, 0, len(studies))
	for _, study := range studies {
		resp = append(resp, study.ToResponse())
	}
	respond.OK(c, gin.H{"success": true, "studies": resp})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.StudyIDKey, id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.studyError(c, err, "failed to delete study")
		return
	}
	respond.OK(c, gin.H{"success": true, "message": "Study deleted successfully"})
}

func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.StudyIDKey, id)

	rc, err := h.Svc.OpenExport(c.Request.Context(), id, c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid export name", nil)
		default:
			respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
		}
		return
	}
	defer rc.Close()

	respond.StreamAttachment(c, c.Param("name"), "application/pdf", rc)
}

func (h *Handler) guidelines(c *gin.Context) {
	respond.OK(c, content.Guidelines())
}

func (h *Handler) guideline(c *gin.Context) {
	section, err := content.ParseSection(c.Param("section"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unknown_section", err.Error(), nil)
		return
	}
	rules, ok := content.RulesFor(section)
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "no guidelines for section", gin.H{"section": section})
		return
	}
	respond.OK(c, rules)
}

func (h *Handler) studyError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Study not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", "study id is required", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
