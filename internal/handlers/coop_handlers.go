package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aidat_app/internal/models"
	"aidat_app/internal/services"
)

type CoopHandler struct {
	coops *services.CoopService
}

func NewCoopHandler(coops *services.CoopService) *CoopHandler {
	return &CoopHandler{coops: coops}
}

// CreateCoop registers a new cooperative.
func (h *CoopHandler) CreateCoop(c echo.Context) error {
	var req CreateCoopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coop := models.Cooperative{Name: req.Name, StartDate: startDate}
	if err := h.coops.Create(&coop); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, coop)
}

// ListCoops returns all cooperatives, newest first.
func (h *CoopHandler) ListCoops(c echo.Context) error {
	coops, err := h.coops.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coops)
}

// GetCoop returns one cooperative by id.
func (h *CoopHandler) GetCoop(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	coop, err := h.coops.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coop)
}

// ListCoopMembers returns the membership roster of a cooperative.
func (h *CoopHandler) ListCoopMembers(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	rows, err := h.coops.CoopMembers(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// ListAvailableMembers returns members not yet enrolled in the cooperative.
func (h *CoopHandler) ListAvailableMembers(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	members, err := h.coops.AvailableMembers(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// AddMembers links a batch of members to the cooperative in one transaction.
func (h *CoopHandler) AddMembers(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req AddMembersRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	entryDate, err := models.ParseDate(req.EntryDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.coops.AddMembersToCoop(id, req.MemberIDs, entryDate); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}
