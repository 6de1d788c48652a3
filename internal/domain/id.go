package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NodeID identifies a node within the peer network. It is the lookup key
// for the certificate directory.
type NodeID string

// String returns the string form of the node id.
func (id NodeID) String() string { return string(id) }

// NewNodeID validates s and returns it as a NodeID. Ids are host-like:
// non-empty, lowercase letters, digits, dots and dashes.
func NewNodeID(s string) (NodeID, error) {
	if s == "" {
		return "", fmt.Errorf("node id must not be empty")
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return "", fmt.Errorf("node id %q contains invalid character %q", s, r)
		}
	}
	return NodeID(s), nil
}

// MsgID is an envelope's correlation id. It stays stable for the
// envelope's lifetime and matches a later response to its request.
type MsgID uuid.UUID

// NewMsgID returns a fresh random MsgID.
func NewMsgID() MsgID { return MsgID(uuid.New()) }

// String returns the canonical UUID form of the id.
func (id MsgID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id MsgID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *MsgID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = MsgID(u)
	return nil
}
