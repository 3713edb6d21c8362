package room

// Intent is a decoded message from the web client. The connection adapter
// decodes the raw frame exactly once; the table dispatches on Type and
// never sees the transport.
type Intent struct {
	// Type is one of "name", "bet", or "cancel"
	Type string `json:"type"`

	// Name is the identity to register (Type == "name")
	Name string `json:"name"`

	// Value is the bet target (Type == "bet")
	Value string `json:"value"`

	// Amount is the wager amount (Type == "bet")
	Amount int `json:"amount"`
}
