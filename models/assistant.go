package models

// AssistantAction is the follow-up hint the responder attaches to a reply.
type AssistantAction string

const (
	ActionNone              AssistantAction = "none"
	ActionCheckAvailability AssistantAction = "check_availability"
	ActionSchedule          AssistantAction = "schedule"
)

// AssistantReply is the responder's output for one conversation turn:
// free text, an optional action hint, and any booking fields recognized
// in the latest user message.
type AssistantReply struct {
	Text      string          `json:"text"`
	Action    AssistantAction `json:"action,omitempty"`
	Extracted BookingDraft    `json:"extracted,omitempty"`
}

// Inquiry intents for the contact endpoint.
const (
	IntentBooking  = "booking"
	IntentQuestion = "question"
	IntentGeneral  = "general"
)

// InquiryResult is the analyzed outcome of a free-form contact message.
type InquiryResult struct {
	Intent   string `json:"intent"`
	Topic    string `json:"topic,omitempty"`
	Response string `json:"response"`
}
