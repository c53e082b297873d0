package plumbing

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// RepoObject is the tagged-variant union of the three object kinds this
// engine stores: Blob, Tree, Commit. Dynamic dispatch over the Java
// source's class hierarchy collapses to this small interface plus an
// exhaustive type switch in the encoder/decoder.
type RepoObject interface {
	// Hash returns the object's content address. Empty until the object
	// has been written through HashObjectWrite.
	Hash() Hash
	// SetHash assigns the object's content address. Called exactly once,
	// by HashObjectWrite.
	SetHash(Hash)
	// Type returns the object's tag.
	Type() ObjectType
	// Encode serializes the object's content (not including the hashing
	// header) per spec.md §4.3.
	Encode() []byte
}

// baseObject carries the hash common to every variant.
type baseObject struct {
	hash Hash
}

func (b *baseObject) Hash() Hash     { return b.hash }
func (b *baseObject) SetHash(h Hash) { b.hash = h }

// Blob is an owned byte sequence — a version-controlled file's content.
type Blob struct {
	baseObject
	Content []byte
}

func NewBlob(content []byte) *Blob {
	return &Blob{Content: content}
}

func (b *Blob) Type() ObjectType { return BlobType }

func (b *Blob) Encode() []byte {
	var buf bytes.Buffer
	writeInt32(&buf, int32(len(b.Content)))
	buf.Write(b.Content)
	return buf.Bytes()
}

// DecodeBlob reverses Blob.Encode.
func DecodeBlob(data []byte) (*Blob, error) {
	r := bytes.NewReader(data)
	length, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("decode blob: %w", err)
	}
	content := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, content); err != nil {
			return nil, fmt.Errorf("decode blob content: %w", err)
		}
	}
	return &Blob{Content: content}, nil
}

// TreeEntry associates a name with the hash of a Blob, Tree or Commit.
type TreeEntry struct {
	ObjectType ObjectType // empty/"?" on an unrecognized type tag
	HashValue  Hash
	Name       string
}

// Tree is an ordered sequence of tree entries. Insertion order is the
// canonical order — there is no sorting requirement.
type Tree struct {
	baseObject
	Entries []TreeEntry
}

func NewTree() *Tree {
	return &Tree{}
}

func (t *Tree) Type() ObjectType { return TreeType }

func (t *Tree) Encode() []byte {
	var buf bytes.Buffer
	writeInt32(&buf, int32(len(t.Entries)))
	for _, e := range t.Entries {
		buf.WriteByte(objectTypeTag(e.ObjectType))
		writeString(&buf, e.Name)
		writeString(&buf, string(e.HashValue))
	}
	return buf.Bytes()
}

// DecodeTree reverses Tree.Encode.
func DecodeTree(data []byte) (*Tree, error) {
	r := bytes.NewReader(data)
	count, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	t := &Tree{Entries: make([]TreeEntry, 0, count)}
	for i := int32(0); i < count; i++ {
		tagByte, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("decode tree entry %d tag: %w", i, err)
		}
		name, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("decode tree entry %d name: %w", i, err)
		}
		hashValue, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("decode tree entry %d hash: %w", i, err)
		}
		t.Entries = append(t.Entries, TreeEntry{
			ObjectType: tagToObjectType(tagByte),
			Name:       name,
			HashValue:  Hash(hashValue),
		})
	}
	return t, nil
}

func objectTypeTag(t ObjectType) byte {
	switch t {
	case BlobType:
		return 'b'
	case CommitType:
		return 'c'
	case TreeType:
		return 't'
	default:
		return '?'
	}
}

func tagToObjectType(tag byte) ObjectType {
	switch tag {
	case 'b':
		return BlobType
	case 'c':
		return CommitType
	case 't':
		return TreeType
	default:
		return ""
	}
}

// Commit stores who saved a snapshot, when, and why, plus the root tree
// for that snapshot and zero or more parent commits.
type Commit struct {
	baseObject
	TreeHash           Hash
	Author             string
	AuthorTimestamp    time.Time
	Committer          string
	CommitterTimestamp time.Time
	Message            string
	ParentHashes       []Hash
}

func (c *Commit) Type() ObjectType { return CommitType }

func (c *Commit) Encode() []byte {
	var buf bytes.Buffer
	writeInt32(&buf, int32(len(c.ParentHashes)))
	for _, p := range c.ParentHashes {
		writeString(&buf, string(p))
	}
	writeString(&buf, string(c.TreeHash))
	writeString(&buf, c.Author)
	writeString(&buf, c.AuthorTimestamp.Format(time.RFC3339Nano))
	writeString(&buf, c.Committer)
	writeString(&buf, c.CommitterTimestamp.Format(time.RFC3339Nano))
	writeString(&buf, c.Message)
	return buf.Bytes()
}

// DecodeCommit reverses Commit.Encode.
func DecodeCommit(data []byte) (*Commit, error) {
	r := bytes.NewReader(data)
	parentCount, err := readInt32(r)
	if err != nil {
		return nil, fmt.Errorf("decode commit: %w", err)
	}
	c := &Commit{ParentHashes: make([]Hash, 0, parentCount)}
	for i := int32(0); i < parentCount; i++ {
		ph, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("decode commit parent %d: %w", i, err)
		}
		c.ParentHashes = append(c.ParentHashes, Hash(ph))
	}

	treeHash, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("decode commit tree hash: %w", err)
	}
	c.TreeHash = Hash(treeHash)

	if c.Author, err = readString(r); err != nil {
		return nil, fmt.Errorf("decode commit author: %w", err)
	}
	authorTS, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("decode commit author timestamp: %w", err)
	}
	if c.AuthorTimestamp, err = time.Parse(time.RFC3339Nano, authorTS); err != nil {
		return nil, fmt.Errorf("parse author timestamp: %w", err)
	}
	if c.Committer, err = readString(r); err != nil {
		return nil, fmt.Errorf("decode commit committer: %w", err)
	}
	committerTS, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("decode commit committer timestamp: %w", err)
	}
	if c.CommitterTimestamp, err = time.Parse(time.RFC3339Nano, committerTS); err != nil {
		return nil, fmt.Errorf("parse committer timestamp: %w", err)
	}
	if c.Message, err = readString(r); err != nil {
		return nil, fmt.Errorf("decode commit message: %w", err)
	}
	return c, nil
}

// --- shared binary framing: §4.3 ---

func writeInt32(buf *bytes.Buffer, v int32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	buf.Write(tmp[:])
}

func readInt32(r *bytes.Reader) (int32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(tmp[:])), nil
}

// writeString frames a UTF-8 string as a 2-byte big-endian length prefix
// followed by its bytes.
func writeString(buf *bytes.Buffer, s string) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	buf.Write(tmp[:])
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var tmp [2]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return "", err
	}
	length := binary.BigEndian.Uint16(tmp[:])
	out := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, out); err != nil {
			return "", err
		}
	}
	return string(out), nil
}
