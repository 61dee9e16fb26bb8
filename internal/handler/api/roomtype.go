package api

import (
	"errors"
	"net/http"

	domroomtype "stayops/internal/domain/roomtype"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomTypeHandler struct {
	cmds commands.RoomTypeCommands
	q    queries.RoomTypeQueries
}

func NewRoomTypeHandler(cmds commands.RoomTypeCommands, q queries.RoomTypeQueries) *RoomTypeHandler {
	return &RoomTypeHandler{cmds: cmds, q: q}
}

// @Summary List room types
// @Description List room types of a hotel
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomTypeResponse
// @Router /hotels/{id}/room-types [get]
func (h *RoomTypeHandler) ListByHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel id", nil)
		return
	}
	items, err := h.q.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list room types", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room_types": resdto.FromRoomTypeList(items)})
}

// @Summary Get room type
// @Tags room-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 404 {object} map[string]string
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortRoomTypeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Create room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Create room type request"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-types [post]
func (h *RoomTypeHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	id, err := h.cmds.CreateRoomType(c.Request.Context(), cmd)
	if err != nil {
		h.abortRoomTypeError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room type", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomTypeView(view))
}

// @Summary Update room type
// @Tags room-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Param request body reqdto.UpdateRoomTypeRequest true "Update room type request"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /room-types/{id} [put]
func (h *RoomTypeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRoomTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err = h.cmds.UpdateRoomType(c.Request.Context(), id, cmd); err != nil {
		h.abortRoomTypeError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room type", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomTypeView(view))
}

// @Summary Delete room type
// @Tags room-types
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteRoomType(c.Request.Context(), id); err != nil {
		h.abortRoomTypeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomTypeHandler) abortRoomTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRoomTypeNotFound),
		errors.Is(err, commands.ErrRoomTypeNotFoundWrite),
		errors.Is(err, commands.ErrHotelNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrHotelInactive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, domroomtype.ErrNameRequired),
		errors.Is(err, domroomtype.ErrInvalidCapacity),
		errors.Is(err, domroomtype.ErrNegativeBaseRate),
		errors.Is(err, domroomtype.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
