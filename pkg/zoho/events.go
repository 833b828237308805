package zoho

import "context"

// Event is a calendar meeting in its full form. ListActivities exposes the
// same records reduced to an Activity.
type Event struct {
	ID                string             `json:"id"`
	EventTitle        string             `json:"eventTitle"`
	AllDay            *bool              `json:"allDay,omitempty"`
	StartDateTime     string             `json:"startDateTime"`
	EndDateTime       string             `json:"endDateTime"`
	Location          string             `json:"location,omitempty"`
	Venue             string             `json:"venue,omitempty"`
	WhatID            string             `json:"whatId,omitempty"`
	WhatName          string             `json:"whatName,omitempty"`
	WhoID             string             `json:"whoId,omitempty"`
	WhoName           string             `json:"whoName,omitempty"`
	Participants      []EventParticipant `json:"participants,omitempty"`
	RemindAt          string             `json:"remindAt,omitempty"`
	RecurringActivity interface{}        `json:"recurringActivity,omitempty"`
	Description       string             `json:"description,omitempty"`
	OwnerID           string             `json:"ownerId,omitempty"`
	CreatedAt         string             `json:"createdAt,omitempty"`
	UpdatedAt         string             `json:"updatedAt,omitempty"`
}

// EventParticipant Type is one of user, contact or lead.
type EventParticipant struct {
	Participant string `json:"participant"`
	Type        string `json:"type"`
	Status      string `json:"status,omitempty"`
}

// EventInput Participants are only sent on create.
type EventInput struct {
	EventTitle    *string            `json:"eventTitle,omitempty"`
	StartDateTime *string            `json:"startDateTime,omitempty"`
	EndDateTime   *string            `json:"endDateTime,omitempty"`
	AllDay        *bool              `json:"allDay,omitempty"`
	Location      *string            `json:"location,omitempty"`
	WhatID        *string            `json:"whatId,omitempty"`
	WhoID         *string            `json:"whoId,omitempty"`
	RemindAt      *string            `json:"remindAt,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Participants  []EventParticipant `json:"participants,omitempty"`
}

var eventFields = []payloadField[EventInput]{
	field("Event_Title", func(in EventInput) interface{} { return opt(in.EventTitle) }).whenDefined(),
	field("Start_DateTime", func(in EventInput) interface{} { return opt(in.StartDateTime) }).whenDefined(),
	field("End_DateTime", func(in EventInput) interface{} { return opt(in.EndDateTime) }).whenDefined(),
	field("All_day", func(in EventInput) interface{} { return opt(in.AllDay) }).whenDefined(),
	field("Location", func(in EventInput) interface{} { return opt(in.Location) }),
	field("What_Id", func(in EventInput) interface{} { return opt(in.WhatID) }).asRef(),
	field("Who_Id", func(in EventInput) interface{} { return opt(in.WhoID) }).asRef(),
	field("Remind_At", func(in EventInput) interface{} { return opt(in.RemindAt) }),
	field("Description", func(in EventInput) interface{} { return opt(in.Description) }),
	field("Participants", func(in EventInput) interface{} {
		if in.Participants == nil {
			return nil
		}
		return in.Participants
	}).createOnly(),
}

func mapEvent(r Record) Event {
	whatID, whatName := r.Ref("What_Id")
	whoID, whoName := r.Ref("Who_Id")
	e := Event{
		ID:                r.ID(),
		EventTitle:        r.String("Event_Title"),
		AllDay:            r.Bool("All_day"),
		StartDateTime:     r.String("Start_DateTime"),
		EndDateTime:       r.String("End_DateTime"),
		Location:          r.String("Location"),
		Venue:             r.String("Venue"),
		WhatID:            whatID,
		WhatName:          whatName,
		WhoID:             whoID,
		WhoName:           whoName,
		RemindAt:          r.String("Remind_At"),
		RecurringActivity: r.Raw("Recurring_Activity"),
		Description:       r.String("Description"),
		OwnerID:           r.RefID("Owner"),
		CreatedAt:         r.String("Created_Time"),
		UpdatedAt:         r.String("Modified_Time"),
	}
	for _, p := range r.Records("Participants") {
		e.Participants = append(e.Participants, EventParticipant{
			Participant: p.String("participant"),
			Type:        p.String("type"),
			Status:      p.String("status"),
		})
	}
	return e
}

func (c *Client) ListEvents(ctx context.Context, params PageParams) (*Page[Event], error) {
	return listRecords(ctx, c, eventsModule, params, mapEvent)
}

func (c *Client) GetEvent(ctx context.Context, id string) (*Event, error) {
	return getRecord(ctx, c, eventsModule, id, mapEvent)
}

func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	return createRecord(ctx, c, eventsModule, buildPayload(in, eventFields, opCreate), mapEvent)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventInput) (*Event, error) {
	return updateRecord(ctx, c, eventsModule, id, buildPayload(in, eventFields, opUpdate), mapEvent)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return deleteRecord(ctx, c, eventsModule, id)
}

func (c *Client) SearchEvents(ctx context.Context, params SearchParams) (*Page[Event], error) {
	return searchRecords(ctx, c, eventsModule, params, "", mapEvent)
}
