package zoho

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// Activity types.
const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityTask    = "task"
	ActivityNote    = "note"
	ActivityOther   = "other"
)

// Activity statuses.
const (
	ActivityPending   = "pending"
	ActivityCompleted = "completed"
	ActivityCancelled = "cancelled"
)

// Activity is a task, call or meeting normalised to one shape.
type Activity struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body,omitempty"`
	Status          string   `json:"status,omitempty"`
	DueDate         string   `json:"dueDate,omitempty"`
	CompletedDate   string   `json:"completedDate,omitempty"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
	ActivityDate    string   `json:"activityDate,omitempty"`
	ContactIDs      []string `json:"contactIds,omitempty"`
	CompanyID       string   `json:"companyId,omitempty"`
	DealID          string   `json:"dealId,omitempty"`
	OwnerID         string   `json:"ownerId,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

type ActivityInput struct {
	Type       string   `json:"type"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body,omitempty"`
	DueDate    string   `json:"dueDate,omitempty"`
	ContactIDs []string `json:"contactIds,omitempty"`
	CompanyID  string   `json:"companyId,omitempty"`
	DealID     string   `json:"dealId,omitempty"`
}

// ActivityParams pages the merged feed. RecordID, when set, keeps only
// activities linked to that contact, company or deal.
type ActivityParams struct {
	PageParams
	RecordID string `json:"recordId,omitempty"`
}

// Email directions for LogEmail.
const (
	EmailSent     = "sent"
	EmailReceived = "received"
)

var (
	tasksModule  = module{apiName: "Tasks", label: "task"}
	callsModule  = module{apiName: "Calls", label: "call"}
	eventsModule = module{apiName: "Events", label: "event"}
)

func activityStatus(status string) string {
	if status == "" {
		return ""
	}
	switch strings.ToLower(status) {
	case "completed", "closed":
		return ActivityCompleted
	case "cancelled", "canceled":
		return ActivityCancelled
	}
	return ActivityPending
}

func whoIDs(r Record) []string {
	if id := r.RefID("Who_Id"); id != "" {
		return []string{id}
	}
	return nil
}

func mapTask(r Record) Activity {
	return Activity{
		ID:         r.ID(),
		Type:       ActivityTask,
		Subject:    r.String("Subject"),
		Body:       r.String("Description"),
		DueDate:    r.String("Due_Date"),
		Status:     activityStatus(r.String("Status")),
		ContactIDs: whoIDs(r),
		CompanyID:  r.RefID("What_Id"),
		CreatedAt:  r.String("Created_Time"),
		UpdatedAt:  r.String("Modified_Time"),
	}
}

func mapCall(r Record) Activity {
	return Activity{
		ID:              r.ID(),
		Type:            ActivityCall,
		Subject:         r.String("Subject"),
		Body:            r.String("Description"),
		DueDate:         r.String("Call_Start_Time"),
		DurationMinutes: leadingInt(r.String("Call_Duration")),
		ContactIDs:      whoIDs(r),
		CompanyID:       r.RefID("What_Id"),
		CreatedAt:       r.String("Created_Time"),
		UpdatedAt:       r.String("Modified_Time"),
	}
}

func mapEventActivity(r Record) Activity {
	return Activity{
		ID:           r.ID(),
		Type:         ActivityMeeting,
		Subject:      r.String("Event_Title"),
		Body:         r.String("Description"),
		ActivityDate: r.String("Start_DateTime"),
		ContactIDs:   whoIDs(r),
		CompanyID:    r.RefID("What_Id"),
		CreatedAt:    r.String("Created_Time"),
		UpdatedAt:    r.String("Modified_Time"),
	}
}

type activityFeed struct {
	module module
	mapFn  func(Record) Activity
}

// activityFeeds are merged in this order before sorting.
var activityFeeds = []activityFeed{
	{module: tasksModule, mapFn: mapTask},
	{module: callsModule, mapFn: mapCall},
	{module: eventsModule, mapFn: mapEventActivity},
}

// ListActivities merges one page of tasks, calls and events. A feed that
// fails contributes nothing; the others are still returned.
func (c *Client) ListActivities(ctx context.Context, params ActivityParams) (*Page[Activity], error) {
	w := params.window()
	results := make([]listResponse, len(activityFeeds))

	p := pool.New().WithMaxGoroutines(len(activityFeeds))
	for i, feed := range activityFeeds {
		i, feed := i, feed
		p.Go(func() {
			var resp listResponse
			if err := c.get(ctx, feed.module.path(), w.query(), &resp); err != nil {
				c.logger.Warn("Failed to fetch activities, continuing without them",
					zap.String("module", feed.module.apiName),
					zap.Error(err))
				resp = listResponse{}
			}
			results[i] = resp
		})
	}
	p.Wait()

	var (
		activities []Activity
		total      int
		hasMore    bool
	)
	for i, feed := range activityFeeds {
		activities = append(activities, mapRecords(results[i].Data, feed.mapFn)...)
		if info := results[i].Info; info != nil {
			total += info.Count
			hasMore = hasMore || info.MoreRecords
		}
	}

	if params.RecordID != "" {
		activities = filterActivities(activities, params.RecordID)
	}

	sort.SliceStable(activities, func(a, b int) bool {
		return epochMillis(activities[a].CreatedAt) > epochMillis(activities[b].CreatedAt)
	})

	if activities == nil {
		activities = []Activity{}
	}
	page := &Page[Activity]{
		Items:   activities,
		Count:   len(activities),
		Total:   total,
		HasMore: hasMore,
	}
	if hasMore {
		page.NextCursor = strconv.Itoa(w.page + 1)
	}
	return page, nil
}

func filterActivities(activities []Activity, recordID string) []Activity {
	out := activities[:0]
	for _, a := range activities {
		if a.CompanyID == recordID || a.DealID == recordID || containsString(a.ContactIDs, recordID) {
			out = append(out, a)
		}
	}
	return out
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// CreateActivity records a call, meeting or (by default) task.
func (c *Client) CreateActivity(ctx context.Context, in ActivityInput) (*Activity, error) {
	switch in.Type {
	case ActivityCall:
		contactID := ""
		if len(in.ContactIDs) > 0 {
			contactID = in.ContactIDs[0]
		}
		return c.LogCall(ctx, contactID, in.Subject, in.Body, 0)
	case ActivityMeeting:
		payload := map[string]interface{}{"Event_Title": in.Subject}
		setIfNotEmpty(payload, "Description", in.Body)
		linkActivity(payload, in)
		return c.createActivityRecord(ctx, eventsModule, "create meeting", payload, mapEventActivity)
	}

	payload := map[string]interface{}{
		"Subject": in.Subject,
		"Status":  "Not Started",
	}
	setIfNotEmpty(payload, "Description", in.Body)
	setIfNotEmpty(payload, "Due_Date", in.DueDate)
	linkActivity(payload, in)
	return c.createActivityRecord(ctx, tasksModule, "create task", payload, mapTask)
}

func linkActivity(payload map[string]interface{}, in ActivityInput) {
	if len(in.ContactIDs) > 0 {
		payload["Who_Id"] = in.ContactIDs[0]
	}
	setIfNotEmpty(payload, "What_Id", in.CompanyID)
}

func setIfNotEmpty(payload map[string]interface{}, key, value string) {
	if value != "" {
		payload[key] = value
	}
}

// LogCall records an outbound call. A zero duration is not sent.
func (c *Client) LogCall(ctx context.Context, contactID, subject, notes string, durationMinutes int) (*Activity, error) {
	payload := map[string]interface{}{
		"Subject":   subject,
		"Call_Type": "Outbound",
	}
	setIfNotEmpty(payload, "Description", notes)
	if durationMinutes != 0 {
		payload["Call_Duration"] = strconv.Itoa(durationMinutes)
	}
	setIfNotEmpty(payload, "Who_Id", contactID)

	return c.createActivityRecord(ctx, callsModule, "log call", payload, mapCall)
}

// LogEmail stores an email as a completed task and reports it with type
// "email".
func (c *Client) LogEmail(ctx context.Context, contactID, subject, body, direction string) (*Activity, error) {
	payload := map[string]interface{}{
		"Subject":     "Email: " + subject,
		"Description": "Direction: " + direction + "\n\n" + body,
		"Status":      "Completed",
	}
	setIfNotEmpty(payload, "Who_Id", contactID)

	activity, err := c.createActivityRecord(ctx, tasksModule, "log email", payload, mapTask)
	if err != nil {
		return nil, err
	}
	activity.Type = ActivityEmail
	return activity, nil
}

func (c *Client) createActivityRecord(ctx context.Context, m module, action string, payload map[string]interface{}, mapFn func(Record) Activity) (*Activity, error) {
	id, err := c.writeRecord(ctx, http.MethodPost, m.path(), action, payload)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Recorded activity", zap.String("module", m.apiName), zap.String("id", id))
	return getRecord(ctx, c, m, id, mapFn)
}
