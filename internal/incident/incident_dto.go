package incident

import "time"

type ReportIncidentRequest struct {
	EventID         string `json:"event_id" validate:"omitempty,uuid"`
	IncidentType    string `json:"incident_type" validate:"required,oneof=unauthorized_access suspicious_activity emergency technical_issue other"`
	Severity        string `json:"severity" validate:"required,oneof=low medium high critical"`
	Location        string `json:"location" validate:"max=200"`
	Description     string `json:"description" validate:"required,min=10,max=5000"`
	InvolvedPersons string `json:"involved_persons" validate:"max=2000"`
}

type UpdateIncidentRequest struct {
	Status      string `json:"status" validate:"required,oneof=open investigating resolved closed"`
	ActionTaken string `json:"action_taken" validate:"max=5000"`
}

type IncidentResponse struct {
	ID              string     `json:"id"`
	EventID         string     `json:"event_id,omitempty"`
	ReportedBy      string     `json:"reported_by"`
	IncidentType    string     `json:"incident_type"`
	Severity        string     `json:"severity"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	InvolvedPersons string     `json:"involved_persons"`
	ActionTaken     string     `json:"action_taken"`
	Status          string     `json:"status"`
	ResolvedBy      string     `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toIncidentResponse(i *SecurityIncident) IncidentResponse {
	resp := IncidentResponse{
		ID:              i.ID.String(),
		ReportedBy:      i.ReportedBy.String(),
		IncidentType:    i.IncidentType,
		Severity:        i.Severity,
		Location:        i.Location,
		Description:     i.Description,
		InvolvedPersons: i.InvolvedPersons,
		ActionTaken:     i.ActionTaken,
		Status:          i.Status,
		ResolvedAt:      i.ResolvedAt,
		CreatedAt:       i.CreatedAt,
	}
	if i.EventID != nil {
		resp.EventID = i.EventID.String()
	}
	if i.ResolvedBy != nil {
		resp.ResolvedBy = i.ResolvedBy.String()
	}
	return resp
}
