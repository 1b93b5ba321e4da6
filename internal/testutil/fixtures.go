package testutil

// PickupOrderDoc returns a valid pickup order payload. Overrides replace or
// add fields; an override with a nil value removes the field entirely.
func PickupOrderDoc(overrides map[string]any) map[string]any {
	doc := map[string]any{
		"firstName":        "John",
		"lastName":         "Doe",
		"phone":            "987654321",
		"whatsapp":         "987654321",
		"orderDescription": "2 Tacos",
		"deliveryOption":   "pickup",
	}
	for k, v := range overrides {
		if v == nil {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	return doc
}

// DeliveryOrderDoc returns a valid delivery order payload, address fields
// included.
func DeliveryOrderDoc(overrides map[string]any) map[string]any {
	doc := PickupOrderDoc(map[string]any{
		"deliveryOption": "delivery",
		"address":        "12 Avenue de la Paix",
		"city":           "Kinshasa",
		"commune":        "Gombe",
	})
	for k, v := range overrides {
		if v == nil {
			delete(doc, k)
			continue
		}
		doc[k] = v
	}
	return doc
}
