package domain

// AddressBalance is the decoded balance record for one address.
// Field names mirror the provider's snake_case keys; the bot derives its
// display labels from them.
type AddressBalance struct {
	FinalBalance  float64 `json:"final_balance"`
	NTx           int64   `json:"n_tx"`
	TotalReceived float64 `json:"total_received"`
}
