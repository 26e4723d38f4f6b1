package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"wedding-server/models"

	"github.com/gin-gonic/gin"
)

type GuestCreateRequest struct {
	FirstName           string  `json:"firstName" binding:"required"`
	LastName            string  `json:"lastName"`
	Email               *string `json:"email"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
	MenuChoice          *string `json:"menuChoice"`
	InvitationID        *uint64 `json:"invitationId"`
}

type GuestBulkDeleteRequest struct {
	GuestIDs []uint64 `json:"guestIds"`
}

// JSON field → column whitelist for guest updates.
var guestColumns = map[string]string{
	"firstName":           "first_name",
	"lastName":            "last_name",
	"email":               "email",
	"dietaryRestrictions": "dietary_restrictions",
	"menuChoice":          "menu_choice",
	"invitationId":        "invitation_id",
}

// GuestList handles GET /api/guests
func GuestList(c *gin.Context) {
	guests, err := models.GuestList()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, guests)
}

// GuestSearch handles GET /api/guests/search?q=term. Multiple guests can
// share one invitation, so results are deduplicated by invitation id in
// first-encounter order.
func GuestSearch(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		respondError(c, http.StatusBadRequest, "Search term is required")
		return
	}
	guests, err := models.GuestSearch(term)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	seen := map[uint64]bool{}
	invitations := []*models.Invitation{}
	for _, guest := range guests {
		if guest.Invitation != nil && !seen[guest.Invitation.ID] {
			seen[guest.Invitation.ID] = true
			invitations = append(invitations, guest.Invitation)
		}
	}
	respondData(c, http.StatusOK, invitations)
}

// GuestListByInvitation handles GET /api/guests/invitation/:invitationId
func GuestListByInvitation(c *gin.Context) {
	invitationID, ok := idParam(c, "invitationId")
	if !ok {
		return
	}
	guests, err := models.GuestListByInvitation(invitationID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, guests)
}

// GuestGet handles GET /api/guests/:id
func GuestGet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	guest, err := models.GuestGet(id)
	if err != nil {
		respondStoreError(c, err, "Guest not found")
		return
	}
	respondData(c, http.StatusOK, guest)
}

// GuestCreate handles POST /api/guests
func GuestCreate(c *gin.Context) {
	req := GuestCreateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	guest := models.Guest{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		DietaryRestrictions: req.DietaryRestrictions,
		MenuChoice:          req.MenuChoice,
		InvitationID:        req.InvitationID,
	}
	if err := models.GuestCreate(&guest); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	created, err := models.GuestGet(guest.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, created)
}

// GuestUpdate handles PUT /api/guests/:id. The body is a plain JSON object so
// an explicit "invitationId": null can unassign the guest.
func GuestUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	body := map[string]interface{}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if value, ok := body["firstName"]; ok {
		name, _ := value.(string)
		if strings.TrimSpace(name) == "" {
			respondError(c, http.StatusBadRequest, "First name is required")
			return
		}
	}
	guest, err := models.GuestUpdate(id, filterColumns(body, guestColumns))
	if err != nil {
		respondStoreError(c, err, "Guest not found")
		return
	}
	respondData(c, http.StatusOK, guest)
}

// GuestDelete handles DELETE /api/guests/:id
func GuestDelete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := models.GuestDelete(id); err != nil {
		respondStoreError(c, err, "Guest not found")
		return
	}
	respondMessage(c, "Guest deleted successfully")
}

// GuestBulkDelete handles POST /api/guests/bulk-delete
func GuestBulkDelete(c *gin.Context) {
	req := GuestBulkDeleteRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.GuestIDs) == 0 {
		respondError(c, http.StatusBadRequest, "Guest IDs array is required")
		return
	}
	if err := models.GuestBulkDelete(req.GuestIDs); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondMessage(c, fmt.Sprintf("%d guest(s) deleted successfully", len(req.GuestIDs)))
}
