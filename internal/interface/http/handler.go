package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/astriva/astroday/internal/domain/chart"
	"github.com/astriva/astroday/internal/domain/horoscope"
	apperrors "github.com/astriva/astroday/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chartSvc     chart.Service
	horoscopeSvc horoscope.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chartSvc chart.Service, horoscopeSvc horoscope.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chartSvc:     chartSvc,
		horoscopeSvc: horoscopeSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// RegisterUser creates a user with a computed natal chart.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req chart.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	user, err := h.chartSvc.Register(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "register_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": user.ID, "natal": user.Natal})
}

// GetUser returns a registered user's natal chart.
func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.chartSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapDomainError(err, "user_lookup_failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":    user.ID,
		"createdAt": user.CreatedAt,
		"natal":     user.Natal,
	})
}

// DailyPersonal serves the per-user daily forecast, cached per
// (user, date, timezone).
func (h *Handler) DailyPersonal(c *gin.Context) {
	req := horoscope.PersonalRequest{
		UserID:  strings.TrimSpace(c.Query("userId")),
		Tz:      strings.TrimSpace(c.Query("tz")),
		Date:    strings.TrimSpace(c.Query("date")),
		Refresh: strings.TrimSpace(c.Query("refresh")) == "1",
	}
	if req.UserID == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "missing userId", nil))
		return
	}
	if req.Tz == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "missing tz (IANA), e.g. Asia/Tokyo", nil))
		return
	}

	resp, err := h.horoscopeSvc.Personal(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "daily_personal_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DailyPublic serves the per-timezone sky snapshot.
func (h *Handler) DailyPublic(c *gin.Context) {
	tz := strings.TrimSpace(c.Query("tz"))
	if tz == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "missing tz (IANA), e.g. Asia/Tokyo", nil))
		return
	}

	resp, err := h.horoscopeSvc.Public(c.Request.Context(), tz, strings.TrimSpace(c.Query("date")))
	if err != nil {
		abortWithError(c, mapDomainError(err, "daily_public_failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// mapDomainError converts AppError codes into transport statuses.
func mapDomainError(err error, fallbackCode string) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "not_found"):
		return NewHTTPError(http.StatusNotFound, "not_found", errMessage(err), err)
	case apperrors.IsCode(err, "config_error"):
		return NewHTTPError(http.StatusInternalServerError, "config_error", errMessage(err), err)
	case apperrors.IsCode(err, "ephemeris_error"), apperrors.IsCode(err, "store_error"):
		return NewHTTPError(http.StatusBadGateway, fallbackCode, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
