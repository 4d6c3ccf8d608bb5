package entities

// ReplyClassification is the outcome of keyword classification of an inbound reply.
type ReplyClassification string

const (
	ReplyInterested    ReplyClassification = "interested"
	ReplyNotInterested ReplyClassification = "not_interested"
	ReplyQuestion      ReplyClassification = "question"
	ReplyUnknown       ReplyClassification = "unknown"
)

// TargetStatus returns the lead status a classification moves to, if any.
// Questions and unknown replies never change status; they go to a human.
func (c ReplyClassification) TargetStatus() (LeadStatus, bool) {
	switch c {
	case ReplyInterested:
		return LeadStatusInterested, true
	case ReplyNotInterested:
		return LeadStatusNotInterested, true
	default:
		return "", false
	}
}
