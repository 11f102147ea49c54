package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func sessionApp() *echo.Echo {
	e := echo.New()
	e.Use(Session(true))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionID(c))
	})
	return e
}

func TestSession(t *testing.T) {
	e := sessionApp()

	t.Log("new session is issued")
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, SessionCookie, cookies[0].Name)
		require.True(t, cookies[0].HttpOnly)
		require.True(t, cookies[0].Secure)
		require.Equal(t, cookies[0].Value, rec.Body.String(), "handler must see issued session")

		_, err := uuid.Parse(rec.Body.String())
		require.NoError(t, err)
	}

	t.Log("existing session is reused")
	{
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: id})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Empty(t, rec.Result().Cookies(), "cookie must not be reissued")
		require.Equal(t, id, rec.Body.String())
	}

	t.Log("malformed session is replaced")
	{
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-session"})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Len(t, rec.Result().Cookies(), 1)
		require.NotEqual(t, "not-a-session", rec.Body.String())
	}
}

func TestRequestLogger(t *testing.T) {
	var out bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&out)
	logger.SetFormatter(&logrus.JSONFormatter{})

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, errors.New("short and stout"))
	})

	t.Log("request id is propagated and request logged")
	{
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		require.Equal(t, "req-1", entry["request_id"])
		require.Equal(t, float64(http.StatusNoContent), entry["status"])
	}

	t.Log("status written by error handler is logged")
	{
		out.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.NotEmpty(t, rec.Header().Get(RequestIDHeader), "request id must be generated")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		require.Equal(t, float64(http.StatusTeapot), entry["status"])
	}
}
