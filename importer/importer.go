// Package importer turns spreadsheet rows into Guest and Invitation records,
// grouping guests that share a mailing address into one invitation.
//
// The address-to-invitation map lives for a single ImportGuests call, so
// concurrent imports never share state. Two imports running at the same time
// can still mint duplicate invitations for the same address: the store has no
// uniqueness constraint on normalized addresses.
package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wedding-server/db"
	"wedding-server/metrics"
	"wedding-server/models"

	"gorm.io/gorm"
)

// Row is one record of an uploaded guest spreadsheet. Column-header mapping
// happens in the admin client; by the time a row gets here the fields are
// named. Only GuestName is required.
type Row struct {
	GuestName           string `json:"guestName"`
	Address1            string `json:"address1"`
	Address2            string `json:"address2"`
	City                string `json:"city"`
	State               string `json:"state"`
	Country             string `json:"country"`
	ZipCode             string `json:"zipCode"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phoneNumber"`
	SaveTheDateSent     string `json:"saveTheDateSent"`
	InviteSent          string `json:"inviteSent"`
	TableNumber         string `json:"tableNumber"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Notes               string `json:"notes"`
}

// RowSuccess is the ledger entry for an imported row.
type RowSuccess struct {
	RowNumber    int     `json:"rowNumber"`
	GuestID      uint64  `json:"guestId"`
	InvitationID *uint64 `json:"invitationId"`
	Name         string  `json:"name"`
}

// RowError is the ledger entry for a failed row, carrying the original data
// so the admin can correct and resubmit just that row.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
	Data  Row    `json:"data"`
}

// Result is the full partition of the input by outcome. InvitationsCreated
// counts newly minted invitations only, not reuses.
type Result struct {
	Success            []RowSuccess `json:"success"`
	Errors             []RowError   `json:"errors"`
	InvitationsCreated int          `json:"invitationsCreated"`
}

// ImportGuests processes rows strictly in input order: later rows join
// invitations minted by earlier rows of the same call when their address key
// matches. Import is row-level best-effort; a bad row never blocks the rest.
func ImportGuests(rows []Row) Result {
	result := Result{Success: []RowSuccess{}, Errors: []RowError{}}
	invitationByAddress := map[string]uint64{}

	for i, row := range rows {
		if strings.TrimSpace(row.GuestName) == "" {
			metrics.CountImportRow("skipped")
			continue
		}
		entry, err := importRow(i+1, row, invitationByAddress, &result.InvitationsCreated)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: i + 1, Error: err.Error(), Data: row})
			metrics.CountImportRow("error")
			continue
		}
		result.Success = append(result.Success, *entry)
		metrics.CountImportRow("imported")
	}
	return result
}

// importRow creates the row's invitation (unless one exists for its address
// key) and guest inside one transaction. The shared map is only updated after
// the transaction commits, so a rolled-back invitation is never reused.
func importRow(rowNumber int, row Row, invitationByAddress map[string]uint64, created *int) (*RowSuccess, error) {
	firstName, lastName, err := parseGuestName(row.GuestName)
	if err != nil {
		return nil, err
	}

	key := addressKey(row)
	var invitationID *uint64
	var minted uint64
	guest := models.Guest{
		FirstName:           firstName,
		LastName:            lastName,
		Email:               nullable(row.Email),
		DietaryRestrictions: nullable(row.DietaryRestrictions),
	}

	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if key != "" {
			if id, ok := invitationByAddress[key]; ok {
				invitationID = &id
			} else {
				invitation, err := invitationFromRow(row)
				if err != nil {
					return err
				}
				if err := tx.Create(invitation).Error; err != nil {
					return err
				}
				invitationID = &invitation.ID
				minted = invitation.ID
			}
		}
		guest.InvitationID = invitationID
		return tx.Create(&guest).Error
	})
	if err != nil {
		return nil, err
	}

	if minted != 0 {
		invitationByAddress[key] = minted
		*created++
		metrics.CountImportInvitation()
	}
	return &RowSuccess{
		RowNumber:    rowNumber,
		GuestID:      guest.ID,
		InvitationID: invitationID,
		Name:         firstName + " " + lastName,
	}, nil
}

// parseGuestName splits "First Middle Last" into firstName="First" and
// lastName="Middle Last". A single-word name yields an empty last name.
func parseGuestName(fullName string) (string, string, error) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", "", errors.New("Guest name is empty")
	}
	if len(parts) == 1 {
		return parts[0], "", nil
	}
	return parts[0], strings.Join(parts[1:], " "), nil
}

// parseBoolean is total: absent or unrecognized values are false.
func parseBoolean(value string) bool {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "yes", "true", "y", "1":
		return true
	}
	return false
}

// addressKey normalizes the address components (lowercase-trimmed except the
// zip, which is only trimmed), drops the empty ones and joins the rest with
// "|" so slight case/whitespace variations land in the same household.
func addressKey(row Row) string {
	components := []string{
		strings.ToLower(strings.TrimSpace(row.Address1)),
		strings.ToLower(strings.TrimSpace(row.Address2)),
		strings.ToLower(strings.TrimSpace(row.City)),
		strings.ToLower(strings.TrimSpace(row.State)),
		strings.TrimSpace(row.ZipCode),
	}
	key := make([]string, 0, len(components))
	for _, component := range components {
		if component != "" {
			key = append(key, component)
		}
	}
	return strings.Join(key, "|")
}

func invitationFromRow(row Row) (*models.Invitation, error) {
	invitation := models.Invitation{
		Address:         nullable(row.Address1),
		Address2:        nullable(row.Address2),
		City:            nullable(row.City),
		State:           nullable(row.State),
		Zip:             nullable(row.ZipCode),
		Country:         nullable(row.Country),
		PhoneNumber:     nullable(row.PhoneNumber),
		SaveTheDateSent: parseBoolean(row.SaveTheDateSent),
		InviteSent:      parseBoolean(row.InviteSent),
		Notes:           nullable(row.Notes),
		// PlusOne defaults to false, updated manually later
	}
	if t := strings.TrimSpace(row.TableNumber); t != "" {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("invalid table number %q", row.TableNumber)
		}
		invitation.TableNumber = &n
	}
	return &invitation, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
