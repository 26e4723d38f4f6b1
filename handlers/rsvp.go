package handlers

import (
	"errors"
	"net/http"

	"wedding-server/models"

	"github.com/gin-gonic/gin"
)

type RsvpRequest struct {
	GuestID     uint64 `json:"guestId" binding:"required"`
	IsAttending *bool  `json:"isAttending" binding:"required"`
}

// RsvpSubmit handles POST /api/rsvp. Each guest answers once; the response is
// read-only afterwards.
func RsvpSubmit(c *gin.Context) {
	req := RsvpRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	response, err := models.RsvpSubmit(req.GuestID, *req.IsAttending)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyResponded) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondStoreError(c, err, "Guest not found")
		return
	}
	respondData(c, http.StatusCreated, response)
}
