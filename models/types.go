package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Dispatch mode constants
const (
	DispatchAsync = "async"
	DispatchSync  = "sync"
)

// SMTP TLS mode constants
const (
	TLSModeSTARTTLS = "starttls" // port 587, STARTTLS upgrade
	TLSModeImplicit = "implicit" // port 465, TLS from the first byte
)

// Defaults for the first-run state document.
// DefaultAdminPassHash is the SHA-256 hash of "123"; the hash is compared
// client-side, the server treats it as an opaque blob.
const (
	DefaultPin           = "1234"
	DefaultAdminPassHash = "a665a45920422f9d417e4867efdc4fb8a04a1f3fff1fa07e998e86f7f7a27ae3"
	DefaultPinThreshold  = 10
	NotificationSlots    = 5
)

// DefaultParticipants are the score entries present in a fresh document.
var DefaultParticipants = []string{"Lila", "Maryn"}

// Domain types

// AppState is the single shared application document. Exactly one instance
// exists in the store; it is read and replaced wholesale, never patched.
type AppState struct {
	ID            primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Scores        map[string]int       `json:"scores" bson:"scores"`
	CurrentPin    string               `json:"currentPin" bson:"currentPin"`
	AdminPassHash string               `json:"adminPassHash" bson:"adminPassHash"`
	Notifications []NotificationTarget `json:"notifications" bson:"notifications"`
	ChangeHistory map[string][]any     `json:"changeHistory" bson:"changeHistory"`
	PinThreshold  int                  `json:"pinThreshold" bson:"pinThreshold"`
	LastUpdated   string               `json:"lastUpdated" bson:"lastUpdated"`
}

// NotificationTarget is one phone/carrier pair. Empty strings mean the slot
// is unset. Never persisted on its own; consumed by the alert dispatcher.
type NotificationTarget struct {
	Phone   string `json:"phone" bson:"phone"`
	Carrier string `json:"carrier" bson:"carrier"`
}

// DefaultState returns the fixed first-run document: zeroed scores and empty
// change history for the default participants, default PIN and admin hash,
// five empty notification slots. LastUpdated is stamped by the store.
func DefaultState() AppState {
	scores := make(map[string]int, len(DefaultParticipants))
	history := make(map[string][]any, len(DefaultParticipants))
	for _, name := range DefaultParticipants {
		scores[name] = 0
		history[name] = []any{}
	}

	return AppState{
		Scores:        scores,
		CurrentPin:    DefaultPin,
		AdminPassHash: DefaultAdminPassHash,
		Notifications: make([]NotificationTarget, NotificationSlots),
		ChangeHistory: history,
		PinThreshold:  DefaultPinThreshold,
	}
}

// Request types

type SendAlertRequest struct {
	NotificationMessage string               `json:"notificationMessage"`
	Notifications       []NotificationTarget `json:"notifications"`
}

// Response types

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ServiceInfoResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
