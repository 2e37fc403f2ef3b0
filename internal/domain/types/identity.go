package types

// Identity holds your long-term secp256k1 key pair.
type Identity struct {
	Private    PrivateKey
	Public     PublicKey
	CreatedUTC int64
}
