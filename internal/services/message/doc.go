// Package message seals and opens NIP-44 direct messages for a peer using the
// locally stored identity.
//
// Peers are addressed either by a contact alias or by a 64 character hex
// public key. Encryption and decryption are delegated to nip44.Codec, whose
// conversation-key cache lives as long as the Service.
package message
