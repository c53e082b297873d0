package plumbing

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// Hash is a 40-character lowercase hexadecimal SHA-1 digest used as the
// content address for every object in the store. Equality is string
// equality.
type Hash string

// Empty reports whether the hash has not been assigned yet.
func (h Hash) Empty() bool {
	return h == ""
}

func (h Hash) String() string {
	return string(h)
}

// ObjectType tags the three repo object kinds. The tag string is what gets
// hashed as part of an object's header, so it must never change.
type ObjectType string

const (
	BlobType   ObjectType = "blob"
	TreeType   ObjectType = "tree"
	CommitType ObjectType = "commit"
)

// HashObject computes the SHA-1 digest of a repo object's serialized
// content, deterministically and without touching any repo state.
//
// The digest covers: "<type> <length_marker>\0<payload>", where
// length_marker is the single byte '0' when payload is empty, and the
// ASCII decimal digits of len(payload) otherwise. This diverges from
// canonical Git's length framing for the empty-payload case — preserved
// bit-exactly per the source this was distilled from.
func HashObject(objType ObjectType, payload []byte) Hash {
	var lengthMarker string
	if len(payload) == 0 {
		lengthMarker = "0"
	} else {
		lengthMarker = fmt.Sprintf("%d", len(payload))
	}

	header := fmt.Sprintf("%s %s\x00", objType, lengthMarker)
	buf := make([]byte, 0, len(header)+len(payload))
	buf = append(buf, []byte(header)...)
	buf = append(buf, payload...)

	sum := sha1.Sum(buf)
	return Hash(hex.EncodeToString(sum[:]))
}
