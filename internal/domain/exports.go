package domain

import (
	interfaces "nip44/internal/domain/interfaces"
	types "nip44/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Alias       = types.Alias
	Fingerprint = types.Fingerprint
	PrivateKey  = types.PrivateKey
	PublicKey   = types.PublicKey
	Identity    = types.Identity
	Contact     = types.Contact
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PointMultiplier = interfaces.PointMultiplier
	StreamCipher    = interfaces.StreamCipher
	IdentityService = interfaces.IdentityService
	MessageService  = interfaces.MessageService
	ContactService  = interfaces.ContactService
	IdentityStore   = interfaces.IdentityStore
	ContactStore    = interfaces.ContactStore
)
