package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"RealtyAPI/models"
	"RealtyAPI/store"
	"RealtyAPI/utils"
)

const (
	rootMessage         = "Team Jafri Realty API running"
	maxReportCollection = 10
	maxReportErrorLen   = 80
)

type HealthController struct {
	store          store.Store
	databaseURLSet bool
}

func NewHealthController(s store.Store, databaseURLSet bool) *HealthController {
	return &HealthController{store: s, databaseURLSet: databaseURLSet}
}

func (hc *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.MessageResponse{Message: rootMessage})
}

func (hc *HealthController) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{Status: "OK"})
}

// TestDatabase always answers 200; connectivity problems are described in
// the report itself.
func (hc *HealthController) TestDatabase(c echo.Context) error {
	report := models.DatabaseReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	diag := hc.store.Diagnose(c.Request().Context())
	if !diag.Configured {
		report.Database = "⚠️  Available but not initialized"
		return c.JSON(http.StatusOK, report)
	}

	urlStatus := "❌ Not Set"
	if hc.databaseURLSet {
		urlStatus = "✅ Set"
	}
	name := diag.DatabaseName
	report.Database = "✅ Available"
	report.DatabaseURL = &urlStatus
	report.DatabaseName = &name
	report.ConnectionStatus = "Connected"

	if diag.Err != nil {
		utils.Logger.WithError(diag.Err).Warn("listing collections failed")
		report.Database = "⚠️  Connected but Error: " + truncate(diag.Err.Error(), maxReportErrorLen)
		return c.JSON(http.StatusOK, report)
	}

	collections := diag.Collections
	if len(collections) > maxReportCollection {
		collections = collections[:maxReportCollection]
	}
	if collections != nil {
		report.Collections = collections
	}
	report.Database = "✅ Connected & Working"
	return c.JSON(http.StatusOK, report)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
