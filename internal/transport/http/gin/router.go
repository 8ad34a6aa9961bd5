package httpgin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/deskwise/deskgo/internal/domain"
	redisrepo "github.com/deskwise/deskgo/internal/repository/redis"
	"github.com/deskwise/deskgo/internal/service"
	"github.com/deskwise/deskgo/internal/service/booking"
	"github.com/deskwise/deskgo/internal/service/status"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
	logger *slog.Logger,
	authSecret string,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/", AuthMiddleware(authSecret))

	api.GET("/reservations", handleListSeatStatuses(svcs))
	api.GET("/reservations/counts", handleCountReservations(svcs))
	api.POST("/reservations", handleCreateReservation(svcs, idem))
	api.DELETE("/reservations/:id", handleCancelReservation(svcs))

	return r
}

// --- Handlers with Swagger annotations ---

// @Summary  List seat statuses for a date
// @Param    date  query  string  true  "Calendar day (YYYY-MM-DD)"
// @Success  200  {array}   domain.SeatWithStatus
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /reservations [get]
func handleListSeatStatuses(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
			return
		}

		dateStr := c.Query("date")
		if dateStr == "" {
			badRequest(c, "date is required")
			return
		}

		date, err := domain.ParseDate(dateStr)
		if err != nil {
			badRequest(c, "invalid date (YYYY-MM-DD)")
			return
		}

		seats, err := svcs.Status.ProjectSeatStatuses(c.Request.Context(), date, ident.UserID)
		if err != nil {
			respondErr(c, err)
			return
		}

		// viewer-specific payload, keep it out of shared caches
		writeJSONWithCache(c, http.StatusOK, seats, "private, max-age=5", true)
	}
}

// @Summary  Count reservations per date
// @Param    dates  query  string  true  "Comma-separated days (YYYY-MM-DD)"
// @Success  200  {object}  map[string]int64
// @Failure  400  {object}  ErrorResponse
// @Failure  401  {object}  ErrorResponse
// @Security BearerAuth
// @Router   /reservations/counts [get]
func handleCountReservations(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := identityFrom(c); !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
			return
		}

		datesParam := c.Query("dates")
		if datesParam == "" {
			badRequest(c, "dates is required")
			return
		}

		var dates []time.Time
		for _, s := range strings.Split(datesParam, ",") {
			d, err := domain.ParseDate(strings.TrimSpace(s))
			if err != nil {
				badRequest(c, "invalid date (YYYY-MM-DD): "+s)
				return
			}
			dates = append(dates, d)
		}

		counts, err := svcs.Status.CountReservations(c.Request.Context(), dates)
		if err != nil {
			respondErr(c, err)
			return
		}

		writeJSONWithCache(c, http.StatusOK, counts, "public, max-age=15", true)
	}
}

// @Summary  Create reservation (idempotent)
// @Param    req body  CreateReservationRequest true "payload"
// @Header   201 {string} Idempotency-Key "echo"
// @Success  201 {object} ReservationResponse
// @Failure  400 {object} ErrorResponse "missing fields / past date / window exceeded"
// @Failure  401 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse "seat taken / user already booked"
// @Failure  429 {object} ErrorResponse "rate limited"
// @Security BearerAuth
// @Router   /reservations [post]
func handleCreateReservation(
	svcs *service.Services,
	idem *redisrepo.IdempotencyStore,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
			return
		}

		var req CreateReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		date, err := domain.ParseDate(req.Date)
		if err != nil {
			badRequest(c, "invalid date (YYYY-MM-DD)")
			return
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
		var idemStorageKey string
		if idem != nil && idemKey != "" {
			idemStorageKey = redisrepo.KeyIdemReservation(ident.UserID, idemKey)

			if payload, ok, _ := idem.GetResult(
				c.Request.Context(),
				idemStorageKey,
			); ok {
				c.Header("Idempotency-Key", idemKey)
				c.Data(
					http.StatusCreated,
					"application/json; charset=utf-8",
					[]byte(payload),
				)
				return
			}

			locked, err := idem.AcquireLock(
				c.Request.Context(),
				idemStorageKey,
				60*time.Second,
			)
			if err != nil {
				respondErr(c, err)
				return
			}
			if !locked {
				if payload, ok, _ := idem.GetResult(
					c.Request.Context(),
					idemStorageKey,
				); ok {
					c.Header("Idempotency-Key", idemKey)
					c.Data(
						http.StatusCreated,
						"application/json; charset=utf-8",
						[]byte(payload),
					)
					return
				}
				c.Header("Retry-After", "1")
				c.JSON(
					http.StatusConflict,
					ErrorResponse{Error: "idempotency key in progress"},
				)
				return
			}
		}

		rlKey := "ip:" + c.ClientIP()

		res, err := svcs.Booking.RequestBooking(
			c.Request.Context(),
			ident,
			req.SeatID,
			date,
			rlKey,
		)
		if err != nil {
			if idemStorageKey != "" && idem != nil {
				_ = idem.Release(c.Request.Context(), idemStorageKey)
			}
			if isRateLimitedErr(err) {
				c.Header("Retry-After", "60")
				c.JSON(
					http.StatusTooManyRequests,
					ErrorResponse{Error: err.Error()},
				)
				return
			}
			respondErr(c, err)
			return
		}

		resp := newReservationResponse(res)

		if idemStorageKey != "" && idem != nil {
			b, _ := json.Marshal(resp)
			_ = idem.SaveResult(c.Request.Context(), idemStorageKey, string(b))
			c.Header("Idempotency-Key", idemKey)
		}

		c.JSON(http.StatusCreated, resp)
	}
}

// @Summary  Cancel reservation
// @Param    id  path  string  true  "Reservation ID (uuid)"
// @Success  200 {object} CancelReservationResponse
// @Failure  401 {object} ErrorResponse
// @Failure  403 {object} ErrorResponse "owned by another user"
// @Failure  404 {object} ErrorResponse
// @Security BearerAuth
// @Router   /reservations/{id} [delete]
func handleCancelReservation(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			badRequest(c, "invalid reservation id")
			return
		}

		if err := svcs.Booking.CancelBooking(c.Request.Context(), ident, id); err != nil {
			respondErr(c, err)
			return
		}

		c.JSON(http.StatusOK, CancelReservationResponse{Message: "reservation cancelled"})
	}
}

// --- Helpers ---

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func isRateLimitedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "rate limited")
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	switch {
	// booking service
	case errors.Is(err, booking.ErrPastDate):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot book a past date"})
	case errors.Is(err, booking.ErrWindowExceeded):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date is beyond the booking window"})
	case errors.Is(err, booking.ErrSeatNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "seat not found"})
	case errors.Is(err, booking.ErrSeatTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "seat already reserved for this date"})
	case errors.Is(err, booking.ErrUserAlreadyBooked):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "you already have a reservation for this date"})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "reservation not found"})
	case errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "you can only cancel your own reservations"})
	// status service
	case errors.Is(err, status.ErrNoSeats):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "seat catalog not seeded"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
