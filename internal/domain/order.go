package domain

import (
	"fmt"
	"strings"
	"time"

	"kintacos/internal/errors"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

const (
	DeliveryOptionDelivery = "delivery"
	DeliveryOptionPickup   = "pickup"
)

// Statuses lists every status an order moves through, in lifecycle order.
var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// Order is the single persisted entity: one customer purchase request.
// ID is assigned by the store on creation and is empty before persistence.
type Order struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Phone            string `json:"phone"`
	Whatsapp         string `json:"whatsapp"`
	OrderDescription string `json:"orderDescription"`
	DeliveryOption   string `json:"deliveryOption"`
	Address          string `json:"address"`
	City             string `json:"city"`
	Commune          string `json:"commune"`
	AdditionalInfo   string `json:"additionalInfo"`
	Status           string `json:"status"`
	CreatedAt        string `json:"createdAt"`
}

// NewOrder builds an Order from a raw store document, applying creation
// defaults: missing status becomes pending, missing createdAt becomes the
// current UTC time in ISO-8601.
func NewOrder(doc map[string]any) *Order {
	o := &Order{
		ID:               docString(doc, "id"),
		FirstName:        docString(doc, "firstName"),
		LastName:         docString(doc, "lastName"),
		Phone:            docString(doc, "phone"),
		Whatsapp:         docString(doc, "whatsapp"),
		OrderDescription: docString(doc, "orderDescription"),
		DeliveryOption:   docString(doc, "deliveryOption"),
		Address:          docString(doc, "address"),
		City:             docString(doc, "city"),
		Commune:          docString(doc, "commune"),
		AdditionalInfo:   docString(doc, "additionalInfo"),
		Status:           docString(doc, "status"),
		CreatedAt:        docString(doc, "createdAt"),
	}

	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.CreatedAt == "" {
		o.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	return o
}

// Validate checks the field invariants an order must satisfy before it is
// persisted. Checks run in groups and the first failing group wins: base
// required fields, then delivery fields when the order is a delivery, then
// the phone and whatsapp formats. Within the first two groups every missing
// field is collected into the error.
func (o *Order) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", o.FirstName},
		{"lastName", o.LastName},
		{"phone", o.Phone},
		{"whatsapp", o.Whatsapp},
		{"orderDescription", o.OrderDescription},
		{"deliveryOption", o.DeliveryOption},
	}

	var missing []string
	var details []errors.ValidationDetail
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
			details = append(details, errors.ValidationDetail{Field: f.name, Message: "required field is missing"})
		}
	}
	if len(missing) > 0 {
		return errors.NewValidationError(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
			details...,
		)
	}

	if o.DeliveryOption == DeliveryOptionDelivery {
		deliveryRequired := []struct {
			name  string
			value string
		}{
			{"address", o.Address},
			{"city", o.City},
			{"commune", o.Commune},
		}

		var missingDelivery []string
		var deliveryDetails []errors.ValidationDetail
		for _, f := range deliveryRequired {
			if f.value == "" {
				missingDelivery = append(missingDelivery, f.name)
				deliveryDetails = append(deliveryDetails, errors.ValidationDetail{Field: f.name, Message: "required for delivery orders"})
			}
		}
		if len(missingDelivery) > 0 {
			return errors.NewValidationError(
				fmt.Sprintf("missing delivery fields: %s", strings.Join(missingDelivery, ", ")),
				deliveryDetails...,
			)
		}
	}

	if !ValidPhoneNumber(o.Phone) {
		return errors.NewValidationError("phone number is invalid",
			errors.ValidationDetail{Field: "phone", Message: "must be 9 digits and not start with 0"})
	}

	if !ValidPhoneNumber(o.Whatsapp) {
		return errors.NewValidationError("whatsapp number is invalid",
			errors.ValidationDetail{Field: "whatsapp", Message: "must be 9 digits and not start with 0"})
	}

	return nil
}

// ValidPhoneNumber strips every non-digit character and accepts the result
// when it is exactly 9 digits long and does not start with 0. No country
// code normalization is performed.
func ValidPhoneNumber(number string) bool {
	var digits []rune
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	return len(digits) == 9 && digits[0] != '0'
}

// Document flattens the order into the map persisted to the store. The id
// key is always present, empty before the store has assigned one.
func (o *Order) Document() map[string]any {
	return map[string]any{
		"id":               o.ID,
		"firstName":        o.FirstName,
		"lastName":         o.LastName,
		"phone":            o.Phone,
		"whatsapp":         o.Whatsapp,
		"orderDescription": o.OrderDescription,
		"deliveryOption":   o.DeliveryOption,
		"address":          o.Address,
		"city":             o.City,
		"commune":          o.Commune,
		"additionalInfo":   o.AdditionalInfo,
		"status":           o.Status,
		"createdAt":        o.CreatedAt,
	}
}

func docString(doc map[string]any, key string) string {
	if v, ok := doc[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
