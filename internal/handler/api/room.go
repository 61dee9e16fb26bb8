package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	domroom "stayops/internal/domain/room"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/pkg/rowversion"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary List rooms
// @Description List rooms of a hotel with optional filters
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string true "Hotel ID"
// @Param status query string false "Room status filter"
// @Param housekeeping_status query string false "Housekeeping status filter"
// @Param room_type_id query string false "Room type filter"
// @Param number query string false "Room number substring filter"
// @Param floor query int false "Floor filter"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.RoomListItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Query("hotel_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel_id", nil)
		return
	}

	var filters queries.RoomFilters
	if v := c.Query("status"); v != "" {
		filters.Status = &v
	}
	if v := c.Query("housekeeping_status"); v != "" {
		filters.HousekeepingStatus = &v
	}
	if v := c.Query("room_type_id"); v != "" {
		id, perr := uuid.Parse(v)
		if perr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, perr, "Invalid room_type_id", nil)
			return
		}
		filters.RoomTypeID = &id
	}
	if v := c.Query("number"); v != "" {
		filters.Number = &v
	}
	if v := c.Query("floor"); v != "" {
		floor, perr := strconv.Atoi(v)
		if perr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, perr, "Invalid floor", nil)
			return
		}
		filters.Floor = &floor
	}

	limit, offset := pagination(c)
	items, total, err := h.q.ListByHotel(c.Request.Context(), hotelID, filters, limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": resdto.FromRoomList(items), "total": total})
}

// @Summary Get room
// @Description Get a room by ID
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	setVersionETag(c, view.RowVersion)
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Register a new room in a hotel
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Create room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	result, err := h.cmds.CreateRoom(c.Request.Context(), cmd)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.RoomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	setVersionETag(c, view.RowVersion)
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Replace room details; requires the version token from the last read
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param If-Match header string false "Version token (alternative to row_version in body)"
// @Param request body reqdto.UpdateRoomRequest true "Update room request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	expectedVersion, err := extractRowVersion(c, req.RowVersion)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid row version token", nil)
		return
	}
	if _, err = h.cmds.UpdateRoom(c.Request.Context(), id, cmd, expectedVersion); err != nil {
		h.abortRoomError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	setVersionETag(c, view.RowVersion)
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Change room status
// @Description Change the operational status of a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ChangeRoomStatusRequest true "Status change request"
// @Success 200 {object} resdto.RoomWriteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/status [patch]
func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ChangeRoomStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	status, err := domroom.NewStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
		return
	}
	result, err := h.cmds.ChangeStatus(c.Request.Context(), id, status, req.Reason)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	setVersionETag(c, result.Version)
	c.JSON(http.StatusOK, resdto.NewRoomWriteResponse(result.RoomID.String(), result.Version))
}

// @Summary Change housekeeping status
// @Description Change the housekeeping status of a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.ChangeHousekeepingStatusRequest true "Housekeeping change request"
// @Success 200 {object} resdto.RoomWriteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/housekeeping-status [patch]
func (h *RoomHandler) ChangeHousekeepingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ChangeHousekeepingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	status, err := domroom.NewHousekeepingStatus(req.HousekeepingStatus)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid housekeeping status", nil)
		return
	}
	result, err := h.cmds.ChangeHousekeepingStatus(c.Request.Context(), id, status, req.Reason)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	setVersionETag(c, result.Version)
	c.JSON(http.StatusOK, resdto.NewRoomWriteResponse(result.RoomID.String(), result.Version))
}

// @Summary Delete room
// @Description Soft-delete a room; repeating the call is a no-op
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteRoom(c.Request.Context(), id); err != nil {
		h.abortRoomError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Room summary
// @Description Per-room-type counts of live rooms in a hotel
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param hotel_id query string true "Hotel ID"
// @Success 200 {array} resdto.RoomSummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/summary [get]
func (h *RoomHandler) Summary(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Query("hotel_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel_id", nil)
		return
	}
	items, err := h.q.GetSummary(c.Request.Context(), hotelID)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": resdto.FromRoomSummary(items)})
}

// @Summary Room history
// @Description Lifecycle history of a room, newest first
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param hotel_id query string true "Hotel the room is expected to belong to"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.RoomHistoryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/history [get]
func (h *RoomHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	hotelID, err := uuid.Parse(c.Query("hotel_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hotel_id", nil)
		return
	}
	limit, offset := pagination(c)
	items, total, err := h.q.ListHistory(c.Request.Context(), hotelID, id, limit, offset)
	if err != nil {
		h.abortRoomError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": resdto.FromRoomHistory(items), "total": total})
}

func (h *RoomHandler) abortRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrRoomNotFound),
		errors.Is(err, queries.ErrHotelNotFound),
		errors.Is(err, commands.ErrRoomNotFoundWrite),
		errors.Is(err, commands.ErrHotelNotFoundWrite),
		errors.Is(err, commands.ErrRoomTypeNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrDuplicateRoomNumber):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room number already exists for this hotel", nil)
	case errors.Is(err, commands.ErrVersionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room was modified by another request", nil)
	case errors.Is(err, commands.ErrRowVersionRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Row version is required", nil)
	case errors.Is(err, commands.ErrHotelInactive),
		errors.Is(err, commands.ErrRoomTypeInactive),
		errors.Is(err, commands.ErrRoomTypeHotelMismatch),
		errors.Is(err, queries.ErrRoomHotelMismatch),
		errors.Is(err, domroom.ErrNumberRequired),
		errors.Is(err, domroom.ErrInvalidStatus),
		errors.Is(err, domroom.ErrInvalidHousekeepingStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// extractRowVersion prefers a non-empty body token and falls back to
// If-Match. A missing token yields nil so the command layer decides
// whether the operation demands one.
func extractRowVersion(c *gin.Context, bodyToken *string) (*int64, error) {
	token := ""
	if bodyToken != nil {
		token = strings.TrimSpace(*bodyToken)
	}
	if token == "" {
		if m := strings.TrimSpace(c.GetHeader("If-Match")); m != "" {
			token = strings.Trim(strings.TrimPrefix(m, "W/"), `"`)
		}
	}
	if token == "" {
		return nil, nil
	}
	v, err := rowversion.Decode(token)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func setVersionETag(c *gin.Context, version int64) {
	c.Header("ETag", `"`+rowversion.Encode(version)+`"`)
}

func pagination(c *gin.Context) (limit, offset int) {
	limit = queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	if v := c.Query("offset"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil && iv > 0 {
			offset = iv
		}
	}
	return limit, offset
}
