package order

import "time"

const (
	StatusNew          = "NEW"
	StatusSlipUploaded = "SLIP_UPLOADED"
	StatusConfirmed    = "CONFIRMED"
	StatusDelivered    = "DELIVERED"
	StatusCancelled    = "CANCELLED"
)

// ChoiceSelection is one picked option, copied from the menu at order time.
type ChoiceSelection struct {
	Group  string `json:"group"`
	Choice string `json:"choice"`
}

// Line is one cart line. UnitPrice is resolved server-side from the menu
// snapshot when the order is placed and stored as a copy — a later menu
// refresh never changes an existing order.
type Line struct {
	ItemName  string            `json:"item_name"`
	Quantity  int               `json:"quantity"`
	Choices   []ChoiceSelection `json:"choices,omitempty"`
	UnitPrice float64           `json:"unit_price"`
}

// Order is a captured storefront order.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Note         string    `json:"note,omitempty"`
	Lines        []Line    `json:"lines"`
	Total        float64   `json:"total"`
	SlipURL      string    `json:"slip_url,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
