package models

import (
	"time"

	"wedding-server/db"

	"gorm.io/gorm"
)

// Invitation is a household-level record grouping the guests that share a
// mailing address, plus RSVP logistics (table, notes, plus-one eligibility).
type Invitation struct {
	ID              uint64         `gorm:"primaryKey" json:"id"`
	CreatedAt       time.Time      `json:"createdAt"`
	Address         *string        `gorm:"type:varchar(255)" json:"address"`
	Address2        *string        `gorm:"type:varchar(255)" json:"address2"`
	City            *string        `gorm:"type:varchar(120)" json:"city"`
	State           *string        `gorm:"type:varchar(120)" json:"state"`
	Zip             *string        `gorm:"type:varchar(40)" json:"zip"`
	Country         *string        `gorm:"type:varchar(120)" json:"country"`
	PhoneNumber     *string        `gorm:"type:varchar(40)" json:"phoneNumber"`
	SaveTheDateSent bool           `gorm:"not null;default:false" json:"saveTheDateSent"`
	InviteSent      bool           `gorm:"not null;default:false" json:"inviteSent"`
	TableNumber     *int           `json:"tableNumber"`
	Notes           *string        `gorm:"type:varchar(1000)" json:"notes"`
	PlusOne         bool           `gorm:"not null;default:false" json:"plusOne"`
	Guests          []Guest        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"guests"`
	RsvpResponses   []RsvpResponse `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rsvpResponses"`
}

// Stats are the admin dashboard counters, recomputed fresh on every call.
type Stats struct {
	TotalInvitations     int64 `json:"totalInvitations"`
	TotalGuests          int64 `json:"totalGuests"`
	RespondedInvitations int64 `json:"respondedInvitations"`
	AttendingCount       int64 `json:"attendingCount"`
	NotAttendingCount    int64 `json:"notAttendingCount"`
	PendingInvitations   int64 `json:"pendingInvitations"`
}

// InvitationList returns all invitations, newest first, with their guests
// (and each guest's RSVP response) and their own RSVP responses attached.
func InvitationList() ([]Invitation, error) {
	invitations := []Invitation{}
	err := db.Instance.
		Preload("Guests.RsvpResponse").
		Preload("RsvpResponses").
		Order("created_at DESC").
		Find(&invitations).Error
	return invitations, err
}

func InvitationGet(id uint64) (*Invitation, error) {
	invitation := Invitation{}
	err := db.Instance.
		Preload("Guests.RsvpResponse").
		Preload("RsvpResponses").
		First(&invitation, id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

func InvitationCreate(invitation *Invitation) error {
	return db.Instance.Create(invitation).Error
}

// InvitationUpdate applies the given column values and returns the updated
// invitation with relations. Returns gorm.ErrRecordNotFound for unknown ids.
func InvitationUpdate(id uint64, columns map[string]interface{}) (*Invitation, error) {
	if err := db.Instance.First(&Invitation{}, id).Error; err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := db.Instance.Model(&Invitation{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return nil, err
		}
	}
	return InvitationGet(id)
}

// InvitationDelete removes the invitation together with all of its guests and
// RSVP responses in one transaction. Guests are not left behind unassigned.
func InvitationDelete(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&Invitation{}, id).Error; err != nil {
			return err
		}
		guestIDs := []uint64{}
		if err := tx.Model(&Guest{}).Where("invitation_id = ?", id).Pluck("id", &guestIDs).Error; err != nil {
			return err
		}
		// Responses can reference the invitation directly or through a guest
		// that was assigned after responding.
		query := tx.Where("invitation_id = ?", id)
		if len(guestIDs) > 0 {
			query = tx.Where("invitation_id = ? OR guest_id IN ?", id, guestIDs)
		}
		if err := query.Delete(&RsvpResponse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invitation_id = ?", id).Delete(&Guest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Invitation{}, id).Error
	})
}

// InvitationCreateWithGuests creates the invitation and assigns the given
// guests to it in a single transaction, then returns it with guests attached.
func InvitationCreateWithGuests(invitation *Invitation, guestIDs []uint64) (*Invitation, error) {
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invitation).Error; err != nil {
			return err
		}
		if len(guestIDs) == 0 {
			return nil
		}
		return tx.Model(&Guest{}).Where("id IN ?", guestIDs).Update("invitation_id", invitation.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return InvitationGet(invitation.ID)
}

// InvitationStats recomputes the dashboard counters from current store state.
func InvitationStats() (*Stats, error) {
	stats := Stats{}
	if err := db.Instance.Model(&Invitation{}).Count(&stats.TotalInvitations).Error; err != nil {
		return nil, err
	}
	if err := db.Instance.Model(&Guest{}).Count(&stats.TotalGuests).Error; err != nil {
		return nil, err
	}
	if err := db.Instance.Model(&RsvpResponse{}).
		Where("invitation_id IS NOT NULL").
		Distinct("invitation_id").
		Count(&stats.RespondedInvitations).Error; err != nil {
		return nil, err
	}
	if err := db.Instance.Model(&RsvpResponse{}).Where("is_attending = ?", true).Count(&stats.AttendingCount).Error; err != nil {
		return nil, err
	}
	if err := db.Instance.Model(&RsvpResponse{}).Where("is_attending = ?", false).Count(&stats.NotAttendingCount).Error; err != nil {
		return nil, err
	}
	stats.PendingInvitations = stats.TotalInvitations - stats.RespondedInvitations
	return &stats, nil
}
