package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auction-marketplace/internal/api/middleware"
	"github.com/99minutos/auction-marketplace/internal/core/domain"
)

// ctxIdentity returns the caller injected by the Auth middleware. Its absence
// means the route was wired without Auth, which is answered with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	who, ok := middleware.Identity(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return who, nil
}

// pathID parses the named path parameter. Anything that is not a positive
// integer cannot name a stored row, so it is reported as notFound.
func pathID(c echo.Context, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
