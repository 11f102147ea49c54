package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/Rohith-kulkarni/qwipo-app/internal/service"
	"github.com/Rohith-kulkarni/qwipo-app/internal/view"
	"github.com/labstack/echo/v4"
)

type ListHTTPHandler struct {
	customerSvc service.CustomerService
}

func NewListHTTPHandler(customerSvc service.CustomerService) *ListHTTPHandler {
	return &ListHTTPHandler{customerSvc: customerSvc}
}

func (h *ListHTTPHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	q := model.ListQuery{
		Page: page,
		Filter: model.Filter{
			City:  c.QueryParam("city"),
			State: c.QueryParam("state"),
			Pin:   c.QueryParam("pin"),
		},
	}

	res, err := h.customerSvc.FindPage(c.Request().Context(), q)
	if err != nil {
		return err
	}

	q = res.Query
	return c.Render(http.StatusOK, view.PageList, &view.ListPage{
		Customers: res.Customers,
		Query:     q,
		PrevURL:   listURL(q.PrevPage(), q.Filter),
		NextURL:   listURL(q.NextPage(), q.Filter),
		ClearURL:  listURL(q.Page, model.Filter{}),
	})
}

func listURL(page int, f model.Filter) string {
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))

	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.State != "" {
		v.Set("state", f.State)
	}
	if f.Pin != "" {
		v.Set("pin", f.Pin)
	}
	return "/?" + v.Encode()
}
