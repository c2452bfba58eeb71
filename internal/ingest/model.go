package ingest

// MenuChoice is a single selectable value within an option group.
// PriceModifier is a signed delta on the item's base price.
type MenuChoice struct {
	Name          string  `json:"name"`
	PriceModifier float64 `json:"priceModifier"`
}

// MenuOption is one customer-facing decision on an item. Choice order is
// preserved from the sheet; the first choice is the default.
type MenuOption struct {
	Name    string       `json:"name"`
	Choices []MenuChoice `json:"choices"`
}

// MenuItem is a fully merged menu entry. Identity during ingestion is the
// exact Name; ID is a sequence token stable only within one run.
type MenuItem struct {
	ID          string       `json:"id"`
	Category    string       `json:"category"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description,omitempty"`
	Image       string       `json:"image,omitempty"`
	IsSpicy     bool         `json:"isSpicy,omitempty"`
	Options     []MenuOption `json:"options,omitempty"`
}

// AppConfig holds sheet-wide settings extracted from configuration rows.
// Local device overrides are applied outside this package.
type AppConfig struct {
	LogoURL   string `json:"logoUrl,omitempty"`
	QRCodeURL string `json:"qrCodeUrl,omitempty"`
	LineOAID  string `json:"lineOaId,omitempty"`
}

// MenuData is the sole pipeline output. Consumers must treat it as
// read-only and copy values they need to mutate.
type MenuData struct {
	Items  []MenuItem `json:"items"`
	Config AppConfig  `json:"config"`
}
