package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/moodpulse/internal/domain/dto"
	"github.com/guttosm/moodpulse/internal/middleware"
	"github.com/guttosm/moodpulse/internal/service"
)

// Handler provides HTTP handlers for the mood-log endpoints.
//
// Responsibilities:
//   - Parse request bodies and query parameters
//   - Delegate to the mood service
//   - Map domain outcomes to status codes (400/404 carry no body)
//   - Return structured JSON responses
type Handler struct {
	svc service.MoodService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.MoodService): Business logic for logging and querying moods.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.MoodService) *Handler {
	return &Handler{svc: svc}
}

// LogMood handles POST /api/mood requests.
//
// Responses:
//   - 200 OK: The persisted entry for today.
//   - 400 Bad Request: Malformed body, missing rating or rating outside [1,10]. Empty body.
//   - 500 Internal Server Error: Storage failure.
//
// LogMood godoc
// @Summary      Log today's mood
// @Description  Creates today's entry or overwrites it when one was already logged today
// @Tags         mood
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LogMoodRequest     true  "Rating (1-10) and optional note"
// @Success      200      {object}  dto.MoodEntryResponse  "Persisted entry"
// @Failure      400      "Invalid rating"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/mood [post]
func (h *Handler) LogMood(c *gin.Context) {
	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	entry, err := h.svc.LogMood(c.Request.Context(), req.Rating, req.Note)
	if errors.Is(err, service.ErrInvalidArgument) {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to log mood", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoodEntryResponse(*entry))
}

// GetTodaysMood handles GET /api/mood/today requests.
//
// GetTodaysMood godoc
// @Summary      Get today's mood
// @Tags         mood
// @Produce      json
// @Success      200  {object}  dto.MoodEntryResponse  "Today's entry"
// @Failure      404  "Nothing logged today"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/mood/today [get]
func (h *Handler) GetTodaysMood(c *gin.Context) {
	entry, err := h.svc.GetTodaysMood(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch today's mood", err)
		return
	}
	if entry == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoodEntryResponse(*entry))
}

// GetMoodHistory handles GET /api/mood/history requests.
//
// Query Parameters:
//   - days (int, optional, default 30): size of the window ending today. Must be positive.
//
// GetMoodHistory godoc
// @Summary      List recent moods
// @Description  Entries in the inclusive window [today-(days-1), today], newest first
// @Tags         mood
// @Produce      json
// @Param        days  query     int  false  "Window size in days"  default(30)
// @Success      200   {array}   dto.MoodEntryResponse  "Entries, possibly empty"
// @Failure      400   "Invalid days"
// @Failure      500   {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/mood/history [get]
func (h *Handler) GetMoodHistory(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(service.DefaultHistoryDays)))
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	entries, err := h.svc.GetMoodHistory(c.Request.Context(), days)
	if errors.Is(err, service.ErrInvalidArgument) {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch mood history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMoodHistoryResponse(entries))
}

// GetMoodStats handles GET /api/mood/stats requests.
//
// GetMoodStats godoc
// @Summary      Mood statistics
// @Description  Average rating (2 decimals, 0 when empty) and count of days rated 7+ over the last 30 days
// @Tags         mood
// @Produce      json
// @Success      200  {object}  models.MoodStats   "Stats"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/mood/stats [get]
func (h *Handler) GetMoodStats(c *gin.Context) {
	stats, err := h.svc.GetMoodStats(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute mood stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
