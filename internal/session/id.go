package session

import (
	"crypto/rand"
	"encoding/base32"
	"time"
)

// Crockford alphabet keeps IDs case-insensitive and free of ambiguous
// characters.
var idEncoding = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// NewID returns a 26-character sortable session ID: a 48-bit millisecond
// timestamp prefix followed by 80 random bits.
func NewID() string {
	var b [16]byte
	ts := uint64(time.Now().UnixMilli())
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	return idEncoding.EncodeToString(b[:])
}
