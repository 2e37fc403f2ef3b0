package types

// Contact binds an alias to a peer public key.
type Contact struct {
	Alias    Alias     `json:"alias"`
	Public   PublicKey `json:"public"`
	AddedUTC int64     `json:"added_utc"`
}
