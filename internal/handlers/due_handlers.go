package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aidat_app/internal/models"
	"aidat_app/internal/services"
)

type DueHandler struct {
	dues *services.DuesService
}

func NewDueHandler(dues *services.DuesService) *DueHandler {
	return &DueHandler{dues: dues}
}

// ListDues returns a membership's dues in chronological order.
func (h *DueHandler) ListDues(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	dues, err := h.dues.ListDues(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dues)
}

// GenerateDues fills in monthly dues from the entry date through today.
func (h *DueHandler) GenerateDues(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req GenerateDuesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dues.GenerateDues(id, req.MonthlyAmount); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// AddNextDue appends a due for the month after the latest billed period.
func (h *DueHandler) AddNextDue(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req GenerateDuesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dues.AddNextDue(id, req.MonthlyAmount); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// GenerateYearlyDues spreads a yearly total across twelve monthly dues.
func (h *DueHandler) GenerateYearlyDues(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req YearlyDuesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dues.GenerateYearlyDues(id, req.Year, req.TotalAmount); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// AddExtraDue inserts a supplementary charge for an arbitrary month.
func (h *DueHandler) AddExtraDue(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req ExtraDueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dues.AddExtraDue(id, req.Year, req.Month, req.Amount); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// DeleteYearlyDues removes all of a membership's dues within one year.
func (h *DueHandler) DeleteYearlyDues(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	year, err := idParam(c, "year")
	if err != nil {
		return err
	}

	if err := h.dues.DeleteYearlyDues(id, int(year)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// PayDue records one payment on a due.
func (h *DueHandler) PayDue(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req PayDueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	paymentDate, err := models.ParseDate(req.PaymentDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.dues.PayDue(id, req.Amount, paymentDate); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateDueAmount overwrites a due's amount.
func (h *DueHandler) UpdateDueAmount(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateAmountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.dues.UpdateDueAmount(id, req.Amount); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteDue removes one due by id.
func (h *DueHandler) DeleteDue(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.dues.DeleteDue(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
