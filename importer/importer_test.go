package importer

import (
	"testing"

	"wedding-server/db"
	"wedding-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.Instance = gdb
	models.Init()
}

func TestParseGuestName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{name: "single word", input: "Cher", wantFirst: "Cher", wantLast: ""},
		{name: "first and last", input: "Jane Doe", wantFirst: "Jane", wantLast: "Doe"},
		{name: "three words", input: "Mary Jane Doe", wantFirst: "Mary", wantLast: "Jane Doe"},
		{name: "extra whitespace", input: "  Jane \t Doe  ", wantFirst: "Jane", wantLast: "Doe"},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := parseGuestName(tt.input)
			if tt.wantErr {
				assert.EqualError(t, err, "Guest name is empty")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}

func TestParseBoolean(t *testing.T) {
	trueValues := []string{"yes", "Yes", "TRUE", "true", "y", "Y", "1", " yes "}
	for _, v := range trueValues {
		assert.True(t, parseBoolean(v), "expected %q to parse as true", v)
	}
	falseValues := []string{"", "no", "0", "n", "false", "maybe", "yess", "2"}
	for _, v := range falseValues {
		assert.False(t, parseBoolean(v), "expected %q to parse as false", v)
	}
}

func TestAddressKey(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want string
	}{
		{
			name: "all components",
			row:  Row{Address1: "1 Main St", Address2: "Apt 2", City: "Springfield", State: "IL", ZipCode: "62704"},
			want: "1 main st|apt 2|springfield|il|62704",
		},
		{
			name: "empty components dropped",
			row:  Row{Address1: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
			want: "1 main st|springfield|il|62704",
		},
		{
			name: "case and whitespace insensitive except zip",
			row:  Row{Address1: " 1 MAIN ST ", City: "springfield", State: "il", ZipCode: " 62704 "},
			want: "1 main st|springfield|il|62704",
		},
		{
			name: "no address",
			row:  Row{GuestName: "Jane Doe"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, addressKey(tt.row))
		})
	}
}

func TestImportGroupsGuestsBySharedAddress(t *testing.T) {
	setupTestDB(t)

	rows := []Row{
		{GuestName: "John Smith", Address1: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704", InviteSent: "yes"},
		{GuestName: "Jane Smith", Address1: "1 MAIN ST", City: "springfield", State: "il", ZipCode: "62704"},
		{GuestName: "Jimmy Smith", Address1: " 1 main st ", City: "Springfield ", State: "IL", ZipCode: "62704"},
	}
	result := ImportGuests(rows)

	assert.Equal(t, 1, result.InvitationsCreated)
	require.Len(t, result.Success, 3)
	assert.Empty(t, result.Errors)

	first := result.Success[0].InvitationID
	require.NotNil(t, first)
	for _, entry := range result.Success {
		require.NotNil(t, entry.InvitationID)
		assert.Equal(t, *first, *entry.InvitationID)
	}

	// Exactly one invitation exists and it keeps the first row's fields;
	// joining rows never retroactively update it.
	invitations, err := models.InvitationList()
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.True(t, invitations[0].InviteSent)
	assert.False(t, invitations[0].SaveTheDateSent)
	assert.Len(t, invitations[0].Guests, 3)
}

func TestImportWithoutAddressLeavesGuestUnassigned(t *testing.T) {
	setupTestDB(t)

	result := ImportGuests([]Row{{GuestName: "Jane Doe", Email: "jane@example.com"}})

	assert.Equal(t, 0, result.InvitationsCreated)
	require.Len(t, result.Success, 1)
	assert.Nil(t, result.Success[0].InvitationID)

	guest, err := models.GuestGet(result.Success[0].GuestID)
	require.NoError(t, err)
	assert.Nil(t, guest.InvitationID)
	require.NotNil(t, guest.Email)
	assert.Equal(t, "jane@example.com", *guest.Email)
}

func TestImportRowIndependence(t *testing.T) {
	setupTestDB(t)

	rows := []Row{
		{GuestName: "John Smith", Address1: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
		{GuestName: "Bad Row", Address1: "2 Oak Ave", TableNumber: "not-a-number"},
		{GuestName: "   "}, // blank name: skipped, not an error
		{GuestName: "Jane Doe"},
	}
	result := ImportGuests(rows)

	assert.Len(t, result.Success, 2)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, rows[1], result.Errors[0].Data)
	assert.NotEmpty(t, result.Errors[0].Error)
	// success + errors + skipped == input rows
	assert.Equal(t, len(rows), len(result.Success)+len(result.Errors)+1)

	// The failed row's invitation was rolled back with it.
	assert.Equal(t, 1, result.InvitationsCreated)
	stats, err := models.InvitationStats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalInvitations)
	assert.EqualValues(t, 2, stats.TotalGuests)
}

func TestImportRowNumbersAreOneBased(t *testing.T) {
	setupTestDB(t)

	result := ImportGuests([]Row{
		{GuestName: "Jane Doe"},
		{GuestName: "John Doe"},
	})
	require.Len(t, result.Success, 2)
	assert.Equal(t, 1, result.Success[0].RowNumber)
	assert.Equal(t, 2, result.Success[1].RowNumber)
	assert.Equal(t, "Jane Doe", result.Success[0].Name)
	assert.Equal(t, "John Doe", result.Success[1].Name)
}

func TestImportAddressVariantsScenario(t *testing.T) {
	setupTestDB(t)

	rows := []Row{
		{GuestName: "John Smith", Address1: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704"},
		{GuestName: "Jane Smith", Address1: "1 MAIN ST", City: "springfield", State: "il", ZipCode: "62704"},
	}
	assert.Equal(t, addressKey(rows[0]), addressKey(rows[1]))

	result := ImportGuests(rows)
	assert.Equal(t, 1, result.InvitationsCreated)
	assert.Len(t, result.Success, 2)
	assert.Empty(t, result.Errors)

	require.NotNil(t, result.Success[0].InvitationID)
	guests, err := models.GuestListByInvitation(*result.Success[0].InvitationID)
	require.NoError(t, err)
	assert.Len(t, guests, 2)
}

func TestImportParsesInvitationFields(t *testing.T) {
	setupTestDB(t)

	result := ImportGuests([]Row{{
		GuestName:           "John Smith",
		Address1:            "1 Main St",
		Address2:            "Apt 4",
		City:                "Springfield",
		State:               "IL",
		Country:             "USA",
		ZipCode:             "62704",
		Email:               "john@example.com",
		PhoneNumber:         "555-0100",
		SaveTheDateSent:     "Yes",
		InviteSent:          "0",
		TableNumber:         "12",
		DietaryRestrictions: "vegetarian",
		Notes:               "college friends",
	}})
	require.Len(t, result.Success, 1)
	require.NotNil(t, result.Success[0].InvitationID)

	invitation, err := models.InvitationGet(*result.Success[0].InvitationID)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", *invitation.Address)
	assert.Equal(t, "Apt 4", *invitation.Address2)
	assert.Equal(t, "USA", *invitation.Country)
	assert.Equal(t, "555-0100", *invitation.PhoneNumber)
	assert.True(t, invitation.SaveTheDateSent)
	assert.False(t, invitation.InviteSent)
	require.NotNil(t, invitation.TableNumber)
	assert.Equal(t, 12, *invitation.TableNumber)
	assert.Equal(t, "college friends", *invitation.Notes)
	assert.False(t, invitation.PlusOne)

	guest, err := models.GuestGet(result.Success[0].GuestID)
	require.NoError(t, err)
	assert.Equal(t, "John", guest.FirstName)
	assert.Equal(t, "Smith", guest.LastName)
	assert.Equal(t, "vegetarian", *guest.DietaryRestrictions)
	assert.Nil(t, guest.MenuChoice)
}
