package shapes

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// ID identifies a shape. It is a 128-bit value supplied by the host.
type ID = uuid.UUID

// RootID is the scene root sentinel: the all-zero identifier.
//
// The root is the virtual top of the tree. Rendering always starts here.
// A host may still address it with Use to give the root a child list.
var RootID = uuid.Nil

// IDFromWords packs four 32-bit words into an ID.
//
// Words are laid out big-endian in order: a fills bytes 0-3, b bytes 4-7,
// c bytes 8-11 and d bytes 12-15. This is the order a host gets by reading
// each group of eight hex digits of the canonical string form as one word,
// so "00112233-4455-6677-8899-aabbccddeeff" travels as
// 0x00112233, 0x44556677, 0x8899aabb, 0xccddeeff.
func IDFromWords(a, b, c, d uint32) ID {
	var id ID
	binary.BigEndian.PutUint32(id[0:4], a)
	binary.BigEndian.PutUint32(id[4:8], b)
	binary.BigEndian.PutUint32(id[8:12], c)
	binary.BigEndian.PutUint32(id[12:16], d)
	return id
}

// Words splits an ID into the four words accepted by IDFromWords.
func Words(id ID) (a, b, c, d uint32) {
	return binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint32(id[4:8]),
		binary.BigEndian.Uint32(id[8:12]),
		binary.BigEndian.Uint32(id[12:16])
}

// ParseID parses the canonical string form of an ID.
func ParseID(s string) (ID, error) {
	return uuid.Parse(s)
}
