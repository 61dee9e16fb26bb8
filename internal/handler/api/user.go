package api

import (
	"errors"
	"net/http"

	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
}

func NewUserHandler(cmds commands.UserCommands) *UserHandler {
	return &UserHandler{cmds: cmds}
}

// @Summary Create user
// @Description Register a new user account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateEmail):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, commands.ErrUserCreationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id.String()})
}
