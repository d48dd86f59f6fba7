package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancedesk/freelancedesk/internal/core/ports"
)

// DocumentHandler handles HTTP requests for document metadata.
type DocumentHandler struct {
	service  ports.DocumentService
	activity ports.ActivityRecorder
}

func NewDocumentHandler(service ports.DocumentService, activity ports.ActivityRecorder) *DocumentHandler {
	return &DocumentHandler{service: service, activity: activity}
}

type createDocumentRequest struct {
	ClientID  *string `json:"clientId"`
	ProjectID *string `json:"projectId"`
	InvoiceID *string `json:"invoiceId"`
	QuoteID   *string `json:"quoteId"`
	Name      string  `json:"name" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	FilePath  string  `json:"filePath" validate:"required"`
	FileSize  *int64  `json:"fileSize" validate:"omitempty,gte=0"`
	MimeType  string  `json:"mimeType"`
}

// List handles GET /api/documents with optional type, clientId and
// projectId query filters.
func (h *DocumentHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	docs, err := h.service.List(c.Request().Context(), userID, ports.DocumentFilter{
		Type:      c.QueryParam("type"),
		ClientID:  c.QueryParam("clientId"),
		ProjectID: c.QueryParam("projectId"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

// Create handles POST /api/documents.
func (h *DocumentHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createDocumentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.service.Create(c.Request().Context(), ports.CreateDocumentInput{
		UserID:    userID,
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		InvoiceID: req.InvoiceID,
		QuoteID:   req.QuoteID,
		Name:      req.Name,
		Type:      req.Type,
		FilePath:  req.FilePath,
		FileSize:  req.FileSize,
		MimeType:  req.MimeType,
	})
	if err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "document_created", "document", doc.ID, map[string]string{"name": doc.Name, "type": doc.Type})
	return c.JSON(http.StatusCreated, doc)
}

// Delete handles DELETE /api/documents/:id.
func (h *DocumentHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	logActivity(c, h.activity, userID, "document_deleted", "document", id, nil)
	return c.NoContent(http.StatusNoContent)
}
