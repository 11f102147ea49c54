package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/Rohith-kulkarni/qwipo-app/internal/errors"
	"github.com/Rohith-kulkarni/qwipo-app/internal/middleware"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const msgUnexpectedErr = "Something went wrong, please try again later"

// HTTPErrorHandler renders error page with status matching error kind
func HTTPErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := errorStatus(err)

		entry := logger.WithFields(logrus.Fields{
			"request_id": c.Response().Header().Get(middleware.RequestIDHeader),
			"status":     code,
		}).WithError(err)
		if code >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.Render(code, view.PageError, &view.ErrorPage{Message: msg})
		}
		if err != nil {
			logger.WithError(err).Error("failed to render error page")
		}
	}
}

func errorStatus(err error) (int, string) {
	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, notFoundErr.Error()
	}

	var businessErr *apperrors.BusinessErr
	if errors.As(err, &businessErr) {
		return http.StatusBadRequest, businessErr.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	var statusErr *apperrors.StatusErr
	if errors.As(err, &statusErr) {
		return http.StatusBadGateway, msgUnexpectedErr
	}
	return http.StatusInternalServerError, msgUnexpectedErr
}
