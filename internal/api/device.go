package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/amdfan2go/internal/controller"
	"github.com/qdm12/reprint"
)

func registerDeviceEndpoints(rest *echo.Echo) {
	group := rest.Group("/device")

	group.GET("/", getDevices)
	group.GET("/:"+urlParamId+"/", getDevice)
}

// returns the latest snapshot of every controlled device
func getDevices(c echo.Context) error {
	data := reprint.This(controller.SnapshotMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getDevice(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := controller.SnapshotMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}
