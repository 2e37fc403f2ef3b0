// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (keys, identity, contacts) and contracts
// (capabilities, stores, services) only.
//
// The capability interfaces (PointMultiplier, StreamCipher) are the seams the
// message codec is built on; production implementations live in
// internal/crypto and tests substitute deterministic stubs.
package domain
