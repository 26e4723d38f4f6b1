package models

import (
	"strings"

	"wedding-server/db"

	"gorm.io/gorm"
)

// Guest is an individual invitee. A nil InvitationID means the guest is
// unassigned: excluded from invitation-scoped views, included in global ones.
type Guest struct {
	ID                  uint64        `gorm:"primaryKey" json:"id"`
	FirstName           string        `gorm:"type:varchar(120);not null" json:"firstName"`
	LastName            string        `gorm:"type:varchar(120);not null;default:''" json:"lastName"`
	Email               *string       `gorm:"type:varchar(180)" json:"email"`
	DietaryRestrictions *string       `gorm:"type:varchar(500)" json:"dietaryRestrictions"`
	MenuChoice          *string       `gorm:"type:varchar(120)" json:"menuChoice"`
	InvitationID        *uint64       `json:"invitationId"`
	Invitation          *Invitation   `json:"invitation"`
	RsvpResponse        *RsvpResponse `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"rsvpResponse"`
}

// GuestList returns all guests ordered by last name, with invitation and RSVP
// response attached when present.
func GuestList() ([]Guest, error) {
	guests := []Guest{}
	err := db.Instance.
		Preload("Invitation").
		Preload("RsvpResponse").
		Order("last_name ASC").
		Find(&guests).Error
	return guests, err
}

func GuestGet(id uint64) (*Guest, error) {
	guest := Guest{}
	err := db.Instance.
		Preload("Invitation").
		Preload("RsvpResponse").
		First(&guest, id).Error
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func GuestListByInvitation(invitationID uint64) ([]Guest, error) {
	guests := []Guest{}
	err := db.Instance.
		Preload("RsvpResponse").
		Where("invitation_id = ?", invitationID).
		Order("last_name ASC").
		Find(&guests).Error
	return guests, err
}

// GuestListUnassigned returns guests with no invitation, ordered by last then
// first name.
func GuestListUnassigned() ([]Guest, error) {
	guests := []Guest{}
	err := db.Instance.
		Where("invitation_id IS NULL").
		Order("last_name ASC, first_name ASC").
		Find(&guests).Error
	return guests, err
}

// GuestSearch does a case-insensitive substring match against first and last
// names. Each hit carries its invitation (with that invitation's guests and
// their responses); callers deduplicate by invitation id.
func GuestSearch(term string) ([]Guest, error) {
	like := "%" + strings.ToLower(term) + "%"
	guests := []Guest{}
	err := db.Instance.
		Preload("Invitation.Guests.RsvpResponse").
		Preload("RsvpResponse").
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like).
		Find(&guests).Error
	return guests, err
}

func GuestCreate(guest *Guest) error {
	return db.Instance.Create(guest).Error
}

// GuestUpdate applies the given column values and returns the updated guest
// with relations. An explicit NULL invitation_id unassigns the guest.
func GuestUpdate(id uint64, columns map[string]interface{}) (*Guest, error) {
	if err := db.Instance.First(&Guest{}, id).Error; err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := db.Instance.Model(&Guest{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return nil, err
		}
	}
	return GuestGet(id)
}

// GuestDelete removes the guest and its RSVP response, if any.
func GuestDelete(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&Guest{}, id).Error; err != nil {
			return err
		}
		if err := tx.Where("guest_id = ?", id).Delete(&RsvpResponse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Guest{}, id).Error
	})
}

// GuestBulkDelete removes all matching guests and their RSVP responses in one
// transaction. Ids with no matching row are silently ignored.
func GuestBulkDelete(ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id IN ?", ids).Delete(&RsvpResponse{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&Guest{}).Error
	})
}

// GuestBulkAssign sets the invitation on all matching guests; ids with no
// matching row are ignored.
func GuestBulkAssign(ids []uint64, invitationID uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return db.Instance.Model(&Guest{}).Where("id IN ?", ids).Update("invitation_id", invitationID).Error
}
