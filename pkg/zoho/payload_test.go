package zoho

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPayload_CreateSkipsEmptiesUpdateKeepsThem(t *testing.T) {
	in := ContactInput{
		FirstName: String("Ada"),
		LastName:  String("Lovelace"),
		Phone:     String(""),
		Source:    String("Web"),
	}

	create := buildPayload(in, contactFields, opCreate)
	assert.Equal(t, map[string]interface{}{
		"First_Name":  "Ada",
		"Last_Name":   "Lovelace",
		"Lead_Source": "Web",
	}, create)

	update := buildPayload(in, contactFields, opUpdate)
	assert.Equal(t, map[string]interface{}{
		"First_Name": "Ada",
		"Last_Name":  "Lovelace",
		"Phone":      "",
	}, update)
}

func TestBuildPayload_WhenDefinedSendsZeroOnCreate(t *testing.T) {
	create := buildPayload(DealInput{Name: String("Big"), Amount: Float(0)}, dealFields, opCreate)
	assert.Equal(t, map[string]interface{}{"Deal_Name": "Big", "Amount": 0.0}, create)

	create = buildPayload(ProductInput{ProductActive: Bool(false)}, productFields, opCreate)
	assert.Equal(t, false, create["Product_Active"])
}

func TestBuildPayload_Refs(t *testing.T) {
	create := buildPayload(CaseInput{Subject: String("Broken"), AccountID: String("acc-1")}, caseFields, opCreate)
	assert.Equal(t, map[string]interface{}{"id": "acc-1"}, create["Account_Name"])

	update := buildPayload(CaseInput{AccountID: String("acc-1"), Solution: String("Reboot")}, caseFields, opUpdate)
	assert.NotContains(t, update, "Account_Name")
	assert.Equal(t, "Reboot", update["Solution"])
}

func TestBuildPayload_DealStatusOverridesStage(t *testing.T) {
	tests := []struct {
		status string
		want   interface{}
	}{
		{status: DealStatusWon, want: "Closed Won"},
		{status: DealStatusLost, want: "Closed Lost"},
		{status: "open", want: "Negotiation"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			in := DealInput{StageID: String("Negotiation"), Status: String(tt.status)}
			update := buildPayload(in, dealFields, opUpdate)
			assert.Equal(t, tt.want, update["Stage"])
		})
	}

	create := buildPayload(DealInput{StageID: String("Qualification"), Status: String(DealStatusWon)}, dealFields, opCreate)
	assert.Equal(t, "Qualification", create["Stage"])
}

func TestBuildPayload_EventParticipantsCreateOnly(t *testing.T) {
	in := EventInput{
		EventTitle:   String("Kickoff"),
		Participants: []EventParticipant{{Participant: "u1", Type: "user"}},
	}

	create := buildPayload(in, eventFields, opCreate)
	assert.Contains(t, create, "Participants")
	assert.Equal(t, "Kickoff", create["Event_Title"])

	update := buildPayload(in, eventFields, opUpdate)
	assert.NotContains(t, update, "Participants")
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(""))
	assert.False(t, truthy(0))
	assert.False(t, truthy(0.0))
	assert.False(t, truthy(false))
	assert.True(t, truthy("x"))
	assert.True(t, truthy(2))
	assert.True(t, truthy([]string{}))
}
