package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/editorbox/EditorBox_Go/internal/domain"
	"github.com/editorbox/EditorBox_Go/internal/note"
)

func TestCreateNoteEndpoint(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/notes", CreateNoteRequest{
		Title: "Groceries",
		Body:  strings.Repeat("a", 500),
		Tags:  []string{"home"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	saved := decodeBody[note.SavedNote](t, rec)
	assert.Equal(t, "Groceries", saved.Note.Title)
	require.NotNil(t, saved.Reward)
	assert.Equal(t, 17, saved.Reward.XPGained)
	assert.Equal(t, 3, saved.Reward.CoinsGained)
}

func TestCreateNoteValidation(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/notes", CreateNoteRequest{Title: "no body"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[ValidationErrorResponse](t, rec)
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields, "body")
}

func TestCreateNoteInvalidJSON(t *testing.T) {
	stack := newTestStack(t)

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	stack.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNoteLifecycleEndpoints(t *testing.T) {
	stack := newTestStack(t)

	created := decodeBody[note.SavedNote](t, stack.do(t, http.MethodPost, "/notes", CreateNoteRequest{Body: "hello"}))
	noteID := created.Note.ID

	rec := stack.do(t, http.MethodGet, "/notes/"+noteID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = stack.do(t, http.MethodPut, "/notes/"+noteID, UpdateNoteRequest{Title: "v2", Body: "updated"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[note.SavedNote](t, rec)
	assert.Equal(t, "v2", updated.Note.Title)
	assert.True(t, updated.Reward.Throttled)

	rec = stack.do(t, http.MethodGet, "/notes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notes := decodeBody[[]domain.Note](t, rec)
	assert.Len(t, notes, 1)

	rec = stack.do(t, http.MethodDelete, "/notes/"+noteID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = stack.do(t, http.MethodGet, "/notes/"+noteID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMissingNoteEndpoint(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPut, "/notes/missing", UpdateNoteRequest{Body: "x"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, ErrMsgNoteNotFoundError, resp.Error)
}

func TestImportTextEndpoint(t *testing.T) {
	stack := newTestStack(t)

	rec := stack.do(t, http.MethodPost, "/notes/import", ImportTextRequest{Text: "Shared title\nbody text"})

	require.Equal(t, http.StatusCreated, rec.Code)
	saved := decodeBody[note.SavedNote](t, rec)
	assert.Equal(t, "Shared title", saved.Note.Title)
}
