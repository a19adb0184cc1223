// Package handler contains the echo handlers of the loyalty club API.
package handler

import (
	"net/http"
	"strconv"

	"clubefast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pageFromQuery reads limit and offset. Bounds are applied by usecase.Page.Normalize.
func pageFromQuery(c echo.Context) usecase.Page {
	return usecase.Page{
		Limit:  queryInt(c, "limit"),
		Offset: queryInt(c, "offset"),
	}.Normalize()
}

func queryInt(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}

// queryBool returns nil when the parameter is absent or not a boolean.
func queryBool(c echo.Context, name string) *bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}

	return &value
}

func paramUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}
