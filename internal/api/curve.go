package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/amdfan2go/internal/configuration"
	"github.com/markusressel/amdfan2go/internal/curve"
	"github.com/qdm12/reprint"
)

func registerCurveEndpoints(rest *echo.Echo) {
	group := rest.Group("/curve")

	group.GET("/", getCurve)
}

// returns the breakpoints of the configured fan curve
func getCurve(c echo.Context) error {
	controlCurve := curve.FromConfig(configuration.CurrentConfig.Curve)
	data := reprint.This(controlCurve.Points())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
