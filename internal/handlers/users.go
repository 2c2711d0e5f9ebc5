package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notably-dev/notably/internal/models"
	"github.com/notably-dev/notably/internal/store"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	UserID      string `json:"userId"`
	NewUsername string `json:"newUsername"`
}

func (h *Handler) ListUsers(ctx *gin.Context) {
	users, err := h.users.ListUsers(ctx.Request.Context())

	if err != nil {
		h.log.Error().Err(err).Msg("failed to list users")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in fetching users", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := models.User{
		Email:    body.Email,
		Username: body.Username,
		Password: body.Password,
	}

	if err := h.users.CreateUser(ctx.Request.Context(), &user); err != nil {
		h.log.Error().Err(err).Msg("failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error in creating user", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User is created", "user": user})
}

func (h *Handler) UpdateUser(ctx *gin.Context) {
	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if body.UserID == "" || body.NewUsername == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "ID or new username are required"})
		return
	}

	userID, ok := parseObjectID(body.UserID)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}

	user, err := h.users.UpdateUsername(ctx.Request.Context(), userID, body.NewUsername)

	if err != nil {
		// An unmatched update reports 400 here, not 404. Kept as-is for
		// clients that depend on it.
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "User not found or didn't update user successfully."})
			return
		}
		h.log.Error().Err(err).Msg("failed to update username")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating username", "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Username updated successfully", "user": user})
}

func (h *Handler) DeleteUser(ctx *gin.Context) {
	rawID := ctx.Query("userId")

	if rawID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "UserId is required"})
		return
	}

	userID, ok := parseObjectID(rawID)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}

	err := h.users.DeleteUser(ctx.Request.Context(), userID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		h.log.Error().Err(err).Msg("failed to delete user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting user", "error": err.Error()})
		return
	}

	// Deleting a user does not touch their notes; any notes they owned
	// remain in the collection unreachable through the API. Confirm the
	// desired behavior before adding a cascade here.
	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
