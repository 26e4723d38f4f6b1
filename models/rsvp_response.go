package models

import (
	"errors"
	"time"

	"wedding-server/db"

	"gorm.io/gorm"
)

// ErrAlreadyResponded is returned when a guest submits a second RSVP.
var ErrAlreadyResponded = errors.New("Guest has already responded")

// RsvpResponse is a guest's attendance answer. The invitation id is
// denormalized from the guest at submission time and may be empty for
// unassigned guests. Responses are read-only once recorded; they only go away
// when their guest or invitation is deleted.
type RsvpResponse struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	GuestID      uint64    `gorm:"not null;uniqueIndex" json:"guestId"`
	InvitationID *uint64   `json:"invitationId"`
	IsAttending  bool      `gorm:"not null" json:"isAttending"`
	RespondedAt  time.Time `json:"respondedAt"`
}

// RsvpSubmit records the guest's answer. Unknown guests surface
// gorm.ErrRecordNotFound; a repeated submission returns ErrAlreadyResponded.
func RsvpSubmit(guestID uint64, isAttending bool) (*RsvpResponse, error) {
	response := RsvpResponse{}
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		guest := Guest{}
		if err := tx.First(&guest, guestID).Error; err != nil {
			return err
		}
		err := tx.Where("guest_id = ?", guestID).First(&RsvpResponse{}).Error
		if err == nil {
			return ErrAlreadyResponded
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		response = RsvpResponse{
			GuestID:      guestID,
			InvitationID: guest.InvitationID,
			IsAttending:  isAttending,
			RespondedAt:  time.Now(),
		}
		return tx.Create(&response).Error
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
