package accounts

// Account is the persisted user record. Timestamps are RFC 3339 strings,
// set equal on insert and never mutated afterwards.
type Account struct {
	Username      string
	PasswordHash  string
	Email         string
	OwnerKey      string
	WalletAddress string
	CreatedAt     string
	UpdatedAt     string
}
