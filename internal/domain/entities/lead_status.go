package entities

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownLeadStatus = errors.New("unknown lead status")

// LeadStatus represents the lifecycle of a lead in the outreach funnel.
//
// Wire values are the ones shown to the sales team (Bahasa Indonesia).
//
//	NotContacted -> Sent -> Interested | NotInterested
//
// Escalated is a side-state set only by a human reviewing an ambiguous reply.
type LeadStatus string

const (
	LeadStatusNotContacted  LeadStatus = "Belum Dihubungi"
	LeadStatusSent          LeadStatus = "Sudah Dikirimi"
	LeadStatusInterested    LeadStatus = "Tertarik"
	LeadStatusNotInterested LeadStatus = "Tidak Tertarik"
	LeadStatusEscalated     LeadStatus = "Perlu Tindak Lanjut"
)

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusNotContacted:  {LeadStatusSent, LeadStatusInterested, LeadStatusNotInterested, LeadStatusEscalated},
	LeadStatusSent:          {LeadStatusSent, LeadStatusInterested, LeadStatusNotInterested, LeadStatusEscalated},
	LeadStatusEscalated:     {LeadStatusSent, LeadStatusInterested, LeadStatusNotInterested},
	LeadStatusInterested:    {},
	LeadStatusNotInterested: {},
}

func AllLeadStatuses() []LeadStatus {
	return []LeadStatus{
		LeadStatusNotContacted,
		LeadStatusSent,
		LeadStatusInterested,
		LeadStatusNotInterested,
		LeadStatusEscalated,
	}
}

func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, st := range AllLeadStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownLeadStatus, s)
}

func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusInterested || s == LeadStatusNotInterested
}

// CanTransitionTo reports whether the state machine allows s -> next.
// Sent -> Sent is allowed (re-send); every other self-transition is not.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LeadStatusChanged is emitted after a transition has been persisted.
type LeadStatusChanged struct {
	LeadID string     `json:"lead_id"`
	From   LeadStatus `json:"from"`
	To     LeadStatus `json:"to"`
	Reason string     `json:"reason,omitempty"`
	At     time.Time  `json:"at"`
}
