package api

import (
	"errors"
	"net/http"

	domhotel "stayops/internal/domain/hotel"
	reqdto "stayops/internal/handler/dto/request"
	resdto "stayops/internal/handler/dto/response"
	"stayops/internal/handler/httperr"
	"stayops/internal/usecase/commands"
	"stayops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q}
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Items to skip"
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	items, total, err := h.q.List(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list hotels", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": resdto.FromHotelList(items), "total": total})
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Create hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelRequest true "Create hotel request"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	id, err := h.cmds.CreateHotel(c.Request.Context(), cmd)
	if err != nil {
		h.abortHotelError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hotel", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary Update hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Update hotel request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /hotels/{id} [put]
func (h *HotelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if err = h.cmds.UpdateHotel(c.Request.Context(), id, cmd); err != nil {
		h.abortHotelError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load hotel", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Delete hotel
// @Tags hotels
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteHotel(c.Request.Context(), id); err != nil {
		h.abortHotelError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HotelHandler) abortHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrHotelNotFound), errors.Is(err, commands.ErrHotelNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
	case errors.Is(err, commands.ErrDuplicateHotelCode):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hotel code already exists", nil)
	case errors.Is(err, domhotel.ErrCodeRequired),
		errors.Is(err, domhotel.ErrNameRequired),
		errors.Is(err, domhotel.ErrTimezoneRequired),
		errors.Is(err, domhotel.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
