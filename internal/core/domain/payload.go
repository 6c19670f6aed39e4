package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Payload is an opaque, immutable byte sequence fixed at build time
type Payload struct {
	data []byte
}

// NewPayload copies data into a new Payload
func NewPayload(data []byte) Payload {
	return Payload{data: bytes.Clone(data)}
}

// Bytes returns a copy of the payload contents
func (p Payload) Bytes() []byte {
	return bytes.Clone(p.data)
}

// Len returns the payload length in bytes
func (p Payload) Len() int {
	return len(p.data)
}

// Digest returns the hex-encoded SHA-256 of the payload
func (p Payload) Digest() string {
	return Digest(p.data)
}

// Matches reports whether data is byte-for-byte identical to the payload
func (p Payload) Matches(data []byte) bool {
	return bytes.Equal(p.data, data)
}

// Digest returns the hex-encoded SHA-256 of data
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
