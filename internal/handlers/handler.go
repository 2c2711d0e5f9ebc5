package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/notably-dev/notably/internal/store"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries the store capabilities the resource handlers compose.
// Handlers hold no per-request state; one Handler serves all requests.
type Handler struct {
	users  store.UserStore
	notes  store.NoteStore
	pinger Pinger
	log    zerolog.Logger
}

func New(users store.UserStore, notes store.NoteStore, pinger Pinger, log zerolog.Logger) *Handler {
	return &Handler{
		users:  users,
		notes:  notes,
		pinger: pinger,
		log:    log,
	}
}

// parseObjectID validates the store-native identifier format (24 hex
// characters). Malformed input never reaches the store.
func parseObjectID(s string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// requireUser answers the "does this user exist" precondition shared by
// every note operation. It writes the response on failure and reports
// whether the caller may proceed.
func (h *Handler) requireUser(ctx *gin.Context, userID primitive.ObjectID) bool {
	exists, err := h.users.UserExists(ctx.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to look up user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in fetching user", "error": err.Error()})
		return false
	}

	if !exists {
		ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return false
	}

	return true
}
