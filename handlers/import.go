package handlers

import (
	"fmt"
	"net/http"

	"wedding-server/importer"
	"wedding-server/logger"
	"wedding-server/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ImportGuestsRequest struct {
	Rows []importer.Row `json:"rows"`
}

type AssignInvitationRequest struct {
	GuestIDs       []uint64           `json:"guestIds"`
	InvitationData *InvitationRequest `json:"invitationData"`
}

// ImportGuests handles POST /api/import/guests. The import is row-level
// best-effort; the response carries the complete per-row ledger.
func ImportGuests(c *gin.Context) {
	req := ImportGuestsRequest{}
	if err := c.ShouldBindJSON(&req); err != nil || req.Rows == nil {
		respondError(c, http.StatusBadRequest, "Invalid request: rows array is required")
		return
	}
	result := importer.ImportGuests(req.Rows)
	logger.Get().Info("csv import finished",
		zap.Int("imported", len(result.Success)),
		zap.Int("errors", len(result.Errors)),
		zap.Int("invitations_created", result.InvitationsCreated),
	)
	respondDataMessage(c, http.StatusOK, result,
		fmt.Sprintf("Imported %d guests, %d errors", len(result.Success), len(result.Errors)))
}

// UnassignedGuests handles GET /api/import/unassigned
func UnassignedGuests(c *gin.Context) {
	guests, err := models.GuestListUnassigned()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(c, http.StatusOK, guests)
}

// AssignInvitation handles POST /api/import/assign-invitation: creates an
// invitation and assigns the given unassigned guests to it in one transaction.
func AssignInvitation(c *gin.Context) {
	req := AssignInvitationRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.GuestIDs) == 0 {
		respondError(c, http.StatusBadRequest, "Guest IDs array is required")
		return
	}
	if req.InvitationData == nil {
		respondError(c, http.StatusBadRequest, "Invitation data is required")
		return
	}
	invitation := req.InvitationData.toModel()
	created, err := models.InvitationCreateWithGuests(&invitation, req.GuestIDs)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondDataMessage(c, http.StatusOK, created,
		fmt.Sprintf("Created invitation and assigned %d guests", len(req.GuestIDs)))
}
