package handler

import (
	"scoop/internal/delivery/api/response"
	"scoop/internal/domain/entity"
	"scoop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MemberHandler serves /resources/users/members.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
}

// NewMemberHandler is the constructor for MemberHandler.
func NewMemberHandler(memberUC usecase.MemberUsecase) *MemberHandler {
	return &MemberHandler{memberUC: memberUC}
}

// CreateMemberRequest represents the request body for creating a member.
// A client may omit clientId to attach the member to itself.
type CreateMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	Password     string `json:"password" validate:"required"`
	ClientID     string `json:"clientId" validate:"omitempty,uuid"`
	Relationship string `json:"relationship" validate:"required"`
}

// MemberPatchRequest represents the request body for updating a member.
type MemberPatchRequest struct {
	Relationship *string `json:"relationship" validate:"omitempty,min=1"`
	ClientID     *string `json:"clientId" validate:"omitempty,uuid"`
}

func (r MemberPatchRequest) toPatch() entity.MemberPatch {
	patch := entity.MemberPatch{Relationship: r.Relationship}
	if r.ClientID != nil {
		id := uuid.MustParse(*r.ClientID)
		patch.ClientID = &id
	}

	return patch
}

// Create handles POST /resources/users/members.
func (h *MemberHandler) Create(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}

	var req CreateMemberRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := usecase.NewMember{
		Account:      usecase.Account{Name: req.Name, Password: req.Password},
		Relationship: req.Relationship,
	}
	if req.ClientID != "" {
		input.ClientID = uuid.MustParse(req.ClientID)
	}

	member, err := h.memberUC.Create(c.Request().Context(), caller, input)
	if err != nil {
		return err
	}

	return response.Data(c, member)
}

// List handles GET /resources/users/members.
func (h *MemberHandler) List(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	params, err := listParams(c)
	if err != nil {
		return err
	}

	page, err := h.memberUC.List(c.Request().Context(), caller, params)
	if err != nil {
		return err
	}

	return response.Page(c, page)
}

// Get handles GET /resources/users/members/:id.
func (h *MemberHandler) Get(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	member, err := h.memberUC.Get(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Data(c, member)
}

// Update handles PUT /resources/users/members/:id.
func (h *MemberHandler) Update(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req MemberPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	member, err := h.memberUC.Update(c.Request().Context(), caller, id, req.toPatch())
	if err != nil {
		return err
	}

	return response.Message(c, "Member updated successfully", member)
}

// Delete handles DELETE /resources/users/members/:id.
func (h *MemberHandler) Delete(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.memberUC.Delete(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeleteMany handles DELETE /resources/users/members/deleteMany.
func (h *MemberHandler) DeleteMany(c echo.Context) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	ids, err := idsQuery(c)
	if err != nil {
		return err
	}

	if err := h.memberUC.DeleteMany(c.Request().Context(), caller, ids); err != nil {
		return err
	}

	return response.NoContent(c)
}
