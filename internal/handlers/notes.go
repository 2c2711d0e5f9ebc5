package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notably-dev/notably/internal/models"
	"github.com/notably-dev/notably/internal/store"
)

type CreateNoteRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type UpdateNoteRequest struct {
	NoteID      string `json:"noteId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const noteNotFoundMessage = "Note not found or does not belong to the user"

func (h *Handler) ListNotes(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx.Query("userId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	if !h.requireUser(ctx, userID) {
		return
	}

	notes, err := h.notes.ListNotes(ctx.Request.Context(), userID)

	if err != nil {
		h.log.Error().Err(err).Msg("failed to list notes")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in fetching notes", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *Handler) GetNote(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx.Query("userId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	noteID, ok := parseObjectID(ctx.Param("note"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing note ID"})
		return
	}

	if !h.requireUser(ctx, userID) {
		return
	}

	note, err := h.notes.FindOwned(ctx.Request.Context(), noteID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": noteNotFoundMessage})
			return
		}
		h.log.Error().Err(err).Msg("failed to fetch note")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in fetching note", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *Handler) CreateNote(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx.Query("userId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	var body CreateNoteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if !h.requireUser(ctx, userID) {
		return
	}

	note := models.Note{
		Title:       body.Title,
		Description: body.Description,
		User:        userID,
	}

	if err := h.notes.CreateNote(ctx.Request.Context(), &note); err != nil {
		h.log.Error().Err(err).Msg("failed to create note")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in creating note", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Note created", "note": note})
}

func (h *Handler) UpdateNote(ctx *gin.Context) {
	var body UpdateNoteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	noteID, ok := parseObjectID(body.NoteID)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing noteId"})
		return
	}

	userID, ok := parseObjectID(ctx.Query("userId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	if !h.requireUser(ctx, userID) {
		return
	}

	// Single {_id, user} filtered update: existence, ownership and the
	// write happen in one round trip, so a note cannot change hands
	// between an ownership check and the mutation.
	note, err := h.notes.UpdateOwned(ctx.Request.Context(), noteID, userID, body.Title, body.Description)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": noteNotFoundMessage})
			return
		}
		h.log.Error().Err(err).Msg("failed to update note")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in updating note", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Note updated", "note": note})
}

func (h *Handler) DeleteNote(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx.Query("userId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId"})
		return
	}

	noteID, ok := parseObjectID(ctx.Query("noteId"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing noteId"})
		return
	}

	if !h.requireUser(ctx, userID) {
		return
	}

	err := h.notes.DeleteOwned(ctx.Request.Context(), noteID, userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": noteNotFoundMessage})
			return
		}
		h.log.Error().Err(err).Msg("failed to delete note")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in deleting note", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
