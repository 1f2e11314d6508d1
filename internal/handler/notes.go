package handler

import (
	"net/http"

	"github.com/editorbox/EditorBox_Go/internal/logger"
	"github.com/editorbox/EditorBox_Go/internal/note"
)

// CreateNoteRequest is the request body for creating a note
type CreateNoteRequest struct {
	Title string   `json:"title" validate:"max=200"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags" validate:"max=20,dive,max=40"`
}

// UpdateNoteRequest is the request body for updating a note
type UpdateNoteRequest struct {
	Title string   `json:"title" validate:"max=200"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags" validate:"max=20,dive,max=40"`
}

// ImportTextRequest is the request body for importing shared text
type ImportTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// HandleCreateNote creates a note and reports the save reward
// @Summary Create a note
// @Description Creates a note; the successful save feeds the progression engine
// @Tags notes
// @Accept json
// @Produce json
// @Param request body CreateNoteRequest true "Note content"
// @Success 201 {object} note.SavedNote
// @Failure 400 {object} ErrorResponse
// @Router /notes [post]
func HandleCreateNote(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNoteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create note"); err != nil {
			return
		}

		saved, err := svc.CreateNote(r.Context(), req.Title, req.Body, req.Tags)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateNoteFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, saved)
	}
}

// HandleUpdateNote updates a note and reports the save reward
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Param noteID path string true "Note id"
// @Param request body UpdateNoteRequest true "Note content"
// @Success 200 {object} note.SavedNote
// @Failure 404 {object} ErrorResponse
// @Router /notes/{noteID} [put]
func HandleUpdateNote(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, ok := GetURLParam(r, w, "noteID")
		if !ok {
			return
		}

		var req UpdateNoteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update note"); err != nil {
			return
		}

		saved, err := svc.UpdateNote(r.Context(), noteID, req.Title, req.Body, req.Tags)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateNoteFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, saved)
	}
}

// HandleGetNote returns a single note
// @Summary Get a note
// @Tags notes
// @Produce json
// @Param noteID path string true "Note id"
// @Success 200 {object} domain.Note
// @Failure 404 {object} ErrorResponse
// @Router /notes/{noteID} [get]
func HandleGetNote(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, ok := GetURLParam(r, w, "noteID")
		if !ok {
			return
		}

		n, err := svc.GetNote(r.Context(), noteID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetNoteFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, n)
	}
}

// HandleListNotes returns all notes, most recently updated first
// @Summary List notes
// @Tags notes
// @Produce json
// @Success 200 {array} domain.Note
// @Router /notes [get]
func HandleListNotes(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := svc.ListNotes(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListNotesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, notes)
	}
}

// HandleDeleteNote deletes a note
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Param noteID path string true "Note id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /notes/{noteID} [delete]
func HandleDeleteNote(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		noteID, ok := GetURLParam(r, w, "noteID")
		if !ok {
			return
		}

		if err := svc.DeleteNote(r.Context(), noteID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteNoteFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Note deleted via API", "note_id", noteID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNoteDeletedSuccess})
	}
}

// HandleImportText creates a note from externally shared text
// @Summary Import shared text as a note
// @Tags notes
// @Accept json
// @Produce json
// @Param request body ImportTextRequest true "Shared text"
// @Success 201 {object} note.SavedNote
// @Failure 400 {object} ErrorResponse
// @Router /notes/import [post]
func HandleImportText(svc note.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportTextRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import text"); err != nil {
			return
		}

		saved, err := svc.ImportText(r.Context(), req.Text)
		if err != nil {
			respondServiceError(w, r, ErrMsgImportTextFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, saved)
	}
}
