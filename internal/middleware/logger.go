package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()

			reqID := req.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			res.Header().Set(RequestIDHeader, reqID)

			start := time.Now()
			err := next(c)
			if err != nil {
				// error handler writes the response, so status is known only after it
				c.Error(err)
			}

			logger.WithFields(logrus.Fields{
				"request_id": reqID,
				"method":     req.Method,
				"uri":        req.RequestURI,
				"status":     res.Status,
				"latency":    time.Since(start).String(),
			}).Info("request processed")

			return nil
		}
	}
}
