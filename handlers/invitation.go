package handlers

import (
	"net/http"

	"wedding-server/models"

	"github.com/gin-gonic/gin"
)

type InvitationRequest struct {
	Address         *string `json:"address"`
	Address2        *string `json:"address2"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Zip             *string `json:"zip"`
	Country         *string `json:"country"`
	PhoneNumber     *string `json:"phoneNumber"`
	SaveTheDateSent bool    `json:"saveTheDateSent"`
	InviteSent      bool    `json:"inviteSent"`
	TableNumber     *int    `json:"tableNumber"`
	Notes           *string `json:"notes"`
	PlusOne         bool    `json:"plusOne"`
}

// JSON field → column whitelist for invitation updates.
var invitationColumns = map[string]string{
	"address":         "address",
	"address2":        "address2",
	"city":            "city",
	"state":           "state",
	"zip":             "zip",
	"country":         "country",
	"phoneNumber":     "phone_number",
	"saveTheDateSent": "save_the_date_sent",
	"inviteSent":      "invite_sent",
	"tableNumber":     "table_number",
	"notes":           "notes",
	"plusOne":         "plus_one",
}

func (r *InvitationRequest) toModel() models.Invitation {
	return models.Invitation{
		Address:         r.Address,
		Address2:        r.Address2,
		City:            r.City,
		State:           r.State,
		Zip:             r.Zip,
		Country:         r.Country,
		PhoneNumber:     r.PhoneNumber,
		SaveTheDateSent: r.SaveTheDateSent,
		InviteSent:      r.InviteSent,
		TableNumber:     r.TableNumber,
		Notes:           r.Notes,
		PlusOne:         r.PlusOne,
	}
}

// InvitationList handles GET /api/invitations
func InvitationList(c *gin.Context) {
	invitations, err := models.InvitationList()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, invitations)
}

// InvitationStats handles GET /api/invitations/stats
func InvitationStats(c *gin.Context) {
	stats, err := models.InvitationStats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, stats)
}

// InvitationGet handles GET /api/invitations/:id
func InvitationGet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	invitation, err := models.InvitationGet(id)
	if err != nil {
		respondStoreError(c, err, "Invitation not found")
		return
	}
	respondData(c, http.StatusOK, invitation)
}

// InvitationCreate handles POST /api/invitations
func InvitationCreate(c *gin.Context) {
	req := InvitationRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	invitation := req.toModel()
	if err := models.InvitationCreate(&invitation); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	created, err := models.InvitationGet(invitation.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusCreated, created)
}

// InvitationUpdate handles PUT /api/invitations/:id
func InvitationUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	body := map[string]interface{}{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	invitation, err := models.InvitationUpdate(id, filterColumns(body, invitationColumns))
	if err != nil {
		respondStoreError(c, err, "Invitation not found")
		return
	}
	respondData(c, http.StatusOK, invitation)
}

// InvitationDelete handles DELETE /api/invitations/:id. Deletion cascades:
// the invitation's guests and RSVP responses go with it.
func InvitationDelete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := models.InvitationDelete(id); err != nil {
		respondStoreError(c, err, "Invitation not found")
		return
	}
	respondMessage(c, "Invitation deleted successfully")
}
