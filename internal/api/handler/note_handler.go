package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keepnote/notes-api/internal/api/metrics"
	"github.com/keepnote/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Every route behind
// it requires the Auth middleware; the owner is always the resolved caller.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// bindNoteRequest binds, trims, and validates the shared note payload.
func bindNoteRequest(c echo.Context) (noteRequest, error) {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	for i, t := range req.Tags {
		req.Tags[i] = strings.TrimSpace(t)
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

// List handles GET /notes.
//
// @Summary      List the caller's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listNotesResponse
// @Failure      401  {object}  map[string]string
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listNotesResponse{
		Message: "Notes retrieved successfully",
		Notes:   toNoteResponses(notes),
	})
}

// Create handles POST /notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note details"
// @Success      201   {object}  noteEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNoteRequest(c)
	if err != nil {
		return err
	}

	note, err := h.service.Create(c.Request().Context(), user.ID, ports.NoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, noteEnvelope{
		Message: "Note created successfully",
		Note:    toNoteResponse(note),
	})
}

// Get handles GET /notes/:id.
//
// @Summary      Get a note by ID
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note ID"
// @Success      200  {object}  noteEnvelope
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	note, err := h.service.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteEnvelope{
		Message: "Note retrieved successfully",
		Note:    toNoteResponse(note),
	})
}

// Update handles PUT /notes/:id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Note ID"
// @Param        body  body      noteRequest  true  "Note details"
// @Success      200   {object}  noteEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req, err := bindNoteRequest(c)
	if err != nil {
		return err
	}

	note, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), ports.NoteInput{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, noteEnvelope{
		Message: "Note updated successfully",
		Note:    toNoteResponse(note),
	})
}

// Delete handles DELETE /notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Security     BearerAuth
// @Param        id  path  string  true  "Note ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}

	metrics.NoteOperationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
