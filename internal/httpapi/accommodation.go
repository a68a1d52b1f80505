package httpapi

import (
	"net/http"
	"time"

	"trip-platform/internal/accommodation"
	"trip-platform/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h Handlers) ListAccommodations(c *gin.Context) {
	out, err := h.Accommodations.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetAccommodation(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Accommodations.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) CreateAccommodation(c *gin.Context) {
	var in accommodation.Accommodation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Accommodations.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h Handlers) UpdateAccommodation(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in accommodation.Accommodation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	in.ID = id
	out, err := h.Accommodations.Update(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) DeleteAccommodation(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Accommodations.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Handlers) ListRoomTypes(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Accommodations.ListRoomTypes(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) CreateRoomType(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var in accommodation.RoomType
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	in.AccommodationID = id
	out, err := h.Accommodations.CreateRoomType(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

type calculateStayRequest struct {
	AccommodationID int64 `json:"accommodation_id"`
	RoomID          int64 `json:"room_id"`
	NumberOfDays    int   `json:"number_of_days"`
}

func (h Handlers) CalculateStayPrice(c *gin.Context) {
	var in calculateStayRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Accommodations.CalculateStayPrice(c.Request.Context(), in.AccommodationID, in.RoomID, in.NumberOfDays)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type createBookingRequest struct {
	AccommodationID int64     `json:"accommodation_id"`
	RoomTypeID      int64     `json:"room_type_id"`
	CheckInDate     time.Time `json:"check_in_date"`
	CheckOutDate    time.Time `json:"check_out_date"`
}

func (h Handlers) CreateBooking(c *gin.Context) {
	rec, ok := auth.IdentityFrom(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var in createBookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Accommodations.CreateBooking(c.Request.Context(), rec.ID, accommodation.RoomBooking{
		AccommodationID: in.AccommodationID,
		RoomTypeID:      in.RoomTypeID,
		CheckInDate:     in.CheckInDate,
		CheckOutDate:    in.CheckOutDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h Handlers) ListBookings(c *gin.Context) {
	rec, ok := auth.IdentityFrom(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	out, err := h.Accommodations.ListBookingsFor(c.Request.Context(), rec.ID, rec.IsStaff)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) ListGuestServices(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Accommodations.ListGuestServices(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) ListFeedback(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	out, err := h.Accommodations.ListFeedback(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type createFeedbackRequest struct {
	AccommodationID int64  `json:"accommodation_id"`
	Rating          int    `json:"rating"`
	Review          string `json:"review"`
}

func (h Handlers) CreateFeedback(c *gin.Context) {
	rec, ok := auth.IdentityFrom(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var in createFeedbackRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := h.Accommodations.CreateFeedback(c.Request.Context(), rec.ID, accommodation.FeedbackReview{
		AccommodationID: in.AccommodationID,
		Rating:          in.Rating,
		Review:          in.Review,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}
