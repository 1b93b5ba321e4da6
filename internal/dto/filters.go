package dto

// ListFilters narrows an order listing. Zero-valued fields impose no
// constraint. StartDate and EndDate bound createdAt inclusively.
type ListFilters struct {
	Status         string
	DeliveryOption string
	StartDate      string
	EndDate        string
}
