package model

// Widget is a pre-formatted text block inside a section.
type Widget struct {
	Text string
}

// Section is a titled group of widgets within a card.
type Section struct {
	Header  string
	Widgets []Widget
}

// Card is a transport-agnostic digest for downstream notifiers.
type Card struct {
	Title    string
	Sections []Section
}

// DeliveryResponse is the raw response returned by the notification endpoint.
type DeliveryResponse struct {
	StatusCode int
	Body       []byte
}
