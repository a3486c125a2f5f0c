package handler

import (
	"strconv"

	"github.com/VISHALLkandharee/Room-Finder/internal/dto/request"
	"github.com/VISHALLkandharee/Room-Finder/internal/dto/response"
	"github.com/VISHALLkandharee/Room-Finder/internal/middleware"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"github.com/VISHALLkandharee/Room-Finder/internal/service"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// List godoc
// @Summary Search room listings
// @Description Lists rooms newest first, filtered by the given criteria
// @Tags rooms
// @Produce json
// @Param location query string false "Location substring, case insensitive"
// @Param min_price query string false "Minimum rent"
// @Param max_price query string false "Maximum rent"
// @Param property_type query string false "Property type" Enums(1BHK, 2BHK, 1Bed, 2Bed, 3Bed)
// @Param tenant_preference query string false "Tenant preference" Enums(Bachelor, Family, Girls, Working)
// @Security BearerAuth
// @Success 200 {object} response.Response{data=response.RoomListResponse}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	var req request.RoomFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "malformed request")
		return
	}

	filter, err := buildFilter(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rooms, err := h.roomService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomListResponse(rooms))
}

func buildFilter(req *request.RoomFilterRequest) (*repository.RoomFilter, error) {
	filter := &repository.RoomFilter{
		Location:         utils.SanitizeString(req.Location),
		PropertyType:     req.PropertyType,
		TenantPreference: req.TenantPreference,
	}

	if req.MinPrice != "" {
		n, err := utils.ParseNonNegativeInt(req.MinPrice)
		if err != nil {
			return nil, errInvalidBound("min_price", err)
		}
		filter.MinPrice = &n
	}
	if req.MaxPrice != "" {
		n, err := utils.ParseNonNegativeInt(req.MaxPrice)
		if err != nil {
			return nil, errInvalidBound("max_price", err)
		}
		filter.MaxPrice = &n
	}

	return filter, nil
}

type boundError struct {
	field string
	err   error
}

func (e *boundError) Error() string {
	return e.field + ": " + e.err.Error()
}

func errInvalidBound(field string, err error) error {
	return &boundError{field: field, err: err}
}

// GetByID godoc
// @Summary Get a room listing
// @Description Retrieves one room with its full image gallery
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Security BearerAuth
// @Success 200 {object} response.Response{data=response.RoomResponse}
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	room, err := h.roomService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomResponse(room))
}

// Create godoc
// @Summary Publish a room listing
// @Description Creates a new listing owned by the caller, lister accounts only
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateRoomRequest true "Listing data"
// @Success 201 {object} response.Response{data=response.RoomResponse}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var req request.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "malformed request")
		return
	}

	identity := middleware.GetIdentity(c)

	room, err := h.roomService.Create(c.Request.Context(), identity, &service.CreateRoomInput{
		Title:            utils.SanitizeString(req.Title),
		Description:      utils.SanitizeString(req.Description),
		Location:         utils.SanitizeString(req.Location),
		City:             utils.SanitizeString(req.City),
		RentPrice:        req.RentPrice,
		PropertyType:     req.PropertyType,
		TenantPreference: req.TenantPreference,
		ContactNumber:    utils.SanitizeString(req.ContactNumber),
		Images:           req.Images,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewRoomResponse(room))
}

// ListMine godoc
// @Summary List my room listings
// @Description Lists the caller's own listings, newest first
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=response.RoomListResponse}
// @Failure 401 {object} response.Response
// @Router /api/v1/rooms/mine [get]
func (h *RoomHandler) ListMine(c *gin.Context) {
	identity := middleware.GetIdentity(c)

	rooms, err := h.roomService.ListMyRooms(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.NewRoomListResponse(rooms))
}

// Delete godoc
// @Summary Delete a room listing
// @Description Permanently removes a listing. Requires ownership and the confirm flag.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param confirm query bool false "Set to true to confirm deletion"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid room id")
		return
	}

	confirm := c.Query("confirm") == "true"
	if !confirm {
		var req request.DeleteRoomRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			confirm = req.Confirm
		}
	}

	identity := middleware.GetIdentity(c)

	if err := h.roomService.Delete(c.Request.Context(), identity, id, confirm); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "listing deleted", nil)
}
