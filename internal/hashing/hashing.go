// Package hashing renders string digests.
package hashing

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hex returns the MD5 digest of the UTF-8 bytes of s as 32 lowercase hex
// characters.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
