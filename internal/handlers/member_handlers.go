package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aidat_app/internal/models"
	"aidat_app/internal/services"
)

type MemberHandler struct {
	members *services.MemberService
}

func NewMemberHandler(members *services.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// CreateMember registers a new member.
func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	regDate, err := models.ParseDate(req.RegistrationDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member := models.Member{
		TCNumber:         req.TCNumber,
		FullName:         req.FullName,
		Phone1:           req.Phone1,
		Phone2:           req.Phone2,
		RegistrationDate: regDate,
	}
	if err := h.members.Create(&member); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// ListMembers returns all members ordered by name.
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.members.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// GetMember returns one member by id.
func (h *MemberHandler) GetMember(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	member, err := h.members.Get(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// SearchMembers matches members by name or TC number.
func (h *MemberHandler) SearchMembers(c echo.Context) error {
	members, err := h.members.Search(c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// UpdateMember overwrites a member's registry fields.
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req CreateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	regDate, err := models.ParseDate(req.RegistrationDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member := models.Member{
		TCNumber:         req.TCNumber,
		FullName:         req.FullName,
		Phone1:           req.Phone1,
		Phone2:           req.Phone2,
		RegistrationDate: regDate,
	}
	if err := h.members.Update(id, &member); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
