package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var fe *InvalidFilterError
		if errors.As(err, &fe) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": fe.Error(), "title": "invalid filter"})
			return
		}

		var ue *UnknownEntityError
		if errors.As(err, &ue) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": ue.Error(), "title": "unknown entity"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
