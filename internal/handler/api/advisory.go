package api

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"AgriChain/internal/domain/models"
	domrepo "AgriChain/internal/domain/repository"
	"AgriChain/internal/service/ratelimit"
	"AgriChain/internal/services/knowledge"
	"AgriChain/internal/usecase"
	xhttp "AgriChain/pkg/http"
	xlogger "AgriChain/pkg/logger"
)

const apiVersion = "1.0.0"

// AdvisoryHandler exposes the advisory pipeline over HTTP.
type AdvisoryHandler struct {
	logger  *xlogger.Logger
	advisor *usecase.AdvisorUseCase
	store   domrepo.PriceStore
	limiter *ratelimit.Limiter
}

func NewAdvisoryHandler(logger *xlogger.Logger, advisor *usecase.AdvisorUseCase, store domrepo.PriceStore, limiter *ratelimit.Limiter) *AdvisoryHandler {
	return &AdvisoryHandler{logger: logger, advisor: advisor, store: store, limiter: limiter}
}

func (h *AdvisoryHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Info)
	e.GET("/health", h.Health)

	g := e.Group("/api")
	g.POST("/advise", h.Advise)
	g.GET("/price-forecast", h.PriceForecast)
}

func (h *AdvisoryHandler) Advise(c echo.Context) error {
	if h.limiter != nil && !h.limiter.Allow(c.RealIP()) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("Too many requests, slow down"))
	}

	req := &models.AdviseRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	advisory, err := h.advisor.Advise(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoMarketData):
			return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(err.Error()))
		case errors.Is(err, models.ErrDataUnavailable):
			h.logger.Error("advise data unavailable", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("Reference data unavailable, try again later"))
		default:
			h.logger.Error("advise usecase error", xlogger.Error(err))
			return xhttp.AppErrorResponse(c, err)
		}
	}
	return xhttp.SuccessResponse(c, advisory)
}

func (h *AdvisoryHandler) PriceForecast(c echo.Context) error {
	req := &models.PriceForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.advisor.PriceForecast(c.Request().Context(), req)
	return xhttp.SuccessResponse(c, res)
}

func (h *AdvisoryHandler) Health(c echo.Context) error {
	rows, err := h.store.Rows(c.Request().Context())
	if err != nil {
		h.logger.Error("health check store error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("Price dataset unavailable"))
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":     "ok",
		"service":    "AgriChain API",
		"version":    apiVersion,
		"price_rows": rows,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *AdvisoryHandler) Info(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"name":    "AgriChain — Farm-to-Market Intelligence API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"POST /api/advise":         "Full farm advisory (harvest + market + spoilage + explanations)",
			"GET  /api/price-forecast": "Seasonal price projection for a crop",
			"GET  /health":             "Service health check",
		},
		"supported_crops":  knowledge.SupportedCrops(),
		"supported_states": knowledge.SupportedStates(),
	})
}
