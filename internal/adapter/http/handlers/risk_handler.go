package handlers

import (
	"net/http"
	"strconv"

	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/risk"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// RiskHandler serves the at-risk revenue dashboard.

type RiskHandler struct {
	usecase usecase.IRiskUseCase
}

func NewRiskHandler(uc usecase.IRiskUseCase) *RiskHandler {
	return &RiskHandler{usecase: uc}
}

// GetAtRiskSummary returns the unsigned-work aggregate for the tenant.
//
// Optional query params warning_days, critical_days and trend_weeks tune
// the aging thresholds and the trend lookback.
func (h *RiskHandler) GetAtRiskSummary(c *gin.Context) {
	tenantID := tenantFrom(c)
	if tenantID == "" {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return
	}

	opts, err := riskOptionsFromQuery(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid dashboard parameters", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.AtRisk(c.Request.Context(), tenantID, opts)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRiskSummary(summary))
}

func riskOptionsFromQuery(c *gin.Context) (risk.Options, error) {
	var opts risk.Options
	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"warning_days", &opts.WarningDays},
		{"critical_days", &opts.CriticalDays},
		{"trend_weeks", &opts.TrendWeeks},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return risk.Options{}, errInvalidTicketPayload
		}
		*p.dst = v
	}
	return opts, nil
}
