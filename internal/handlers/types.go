package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

// Dates cross the API boundary as plain YYYY-MM-DD text; the handlers parse
// them into models.Date before anything touches the store.

type CreateMemberRequest struct {
	TCNumber         string  `json:"tc_number" validate:"required"`
	FullName         string  `json:"full_name" validate:"required"`
	Phone1           string  `json:"phone_1" validate:"required"`
	Phone2           *string `json:"phone_2"`
	RegistrationDate string  `json:"registration_date" validate:"required,datetime=2006-01-02"`
}

type CreateCoopRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type AddMembersRequest struct {
	MemberIDs []uint `json:"member_ids" validate:"required,min=1"`
	EntryDate string `json:"entry_date" validate:"required,datetime=2006-01-02"`
}

type GenerateDuesRequest struct {
	MonthlyAmount float64 `json:"monthly_amount" validate:"required,gt=0"`
}

type YearlyDuesRequest struct {
	Year        int     `json:"year" validate:"required,min=1900,max=2200"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

type ExtraDueRequest struct {
	Year   int     `json:"year" validate:"required,min=1900,max=2200"`
	Month  int     `json:"month" validate:"required,min=1,max=12"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type PayDueRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate string  `json:"payment_date" validate:"required,datetime=2006-01-02"`
}

type UpdateAmountRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// idParam reads a numeric path parameter.
func idParam(c echo.Context, name string) (uint, error) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(val), nil
}
