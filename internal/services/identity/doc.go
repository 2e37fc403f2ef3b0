// Package identity manages the local secp256k1 identity: generating or
// importing the key pair, sealing it in the identity store under a
// passphrase, and reporting its fingerprint.
package identity
