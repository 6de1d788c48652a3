package domain

import (
	"encoding/base64"
	"encoding/json"
	"maps"
	"time"
)

// Stamp is an envelope expiry carried on the wire as unix seconds under
// the "ttl" key.
type Stamp int64

// At converts a time.Time to a Stamp, truncating to whole seconds.
func At(t time.Time) Stamp { return Stamp(t.Unix()) }

// Time returns the stamp as a time.Time in UTC.
func (s Stamp) Time() time.Time { return time.Unix(int64(s), 0).UTC() }

// State is the payload state of an envelope. Plain and Encrypted are the
// only two states; the constraint is a closed type set, so no third state
// can be instantiated.
type State interface {
	Plain | Encrypted
}

// Plain holds a cleartext payload. It marshals as a bare JSON string;
// the wire format carries no tag distinguishing it from ciphertext.
type Plain struct {
	Text string
}

func (p Plain) MarshalJSON() ([]byte, error) { return json.Marshal(p.Text) }

func (p *Plain) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &p.Text) }

// Encrypted holds a ciphertext payload. It marshals as a bare JSON
// string containing the standard-base64 blob.
type Encrypted struct {
	Blob []byte
}

func (e Encrypted) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(e.Blob))
}

func (e *Encrypted) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	blob, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	e.Blob = blob
	return nil
}

// Cipher encrypts and decrypts envelope payloads. The algorithm lives
// behind this interface; Seal and Open only move bytes through it.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Envelope is the message exchanged between nodes. The type parameter
// fixes the payload state: an Envelope[Plain] cannot be handed to code
// expecting an Envelope[Encrypted], and an encrypted payload cannot be
// read as text without going through Open.
type Envelope[S State] struct {
	From     NodeID         `json:"from"`
	To       []NodeID       `json:"to"`
	Expire   Stamp          `json:"ttl"`
	ID       MsgID          `json:"id"`
	Secret   S              `json:"secret"`
	Metadata map[string]any `json:"metadata"`
}

// WaitID returns the correlation id used to match a later response to
// this envelope.
func (e Envelope[S]) WaitID() MsgID { return e.ID }

// Seal encrypts the payload of env with c and returns a new encrypted
// envelope. All non-payload fields are preserved.
func Seal(env Envelope[Plain], c Cipher) (Envelope[Encrypted], error) {
	blob, err := c.Encrypt([]byte(env.Secret.Text))
	if err != nil {
		return Envelope[Encrypted]{}, err
	}
	return Envelope[Encrypted]{
		From:     env.From,
		To:       append([]NodeID(nil), env.To...),
		Expire:   env.Expire,
		ID:       env.ID,
		Secret:   Encrypted{Blob: blob},
		Metadata: maps.Clone(env.Metadata),
	}, nil
}

// Open decrypts the payload of env with c and returns a new plaintext
// envelope. All non-payload fields are preserved. A bad key or corrupted
// ciphertext surfaces as the cipher's error.
func Open(env Envelope[Encrypted], c Cipher) (Envelope[Plain], error) {
	text, err := c.Decrypt(env.Secret.Blob)
	if err != nil {
		return Envelope[Plain]{}, err
	}
	return Envelope[Plain]{
		From:     env.From,
		To:       append([]NodeID(nil), env.To...),
		Expire:   env.Expire,
		ID:       env.ID,
		Secret:   Plain{Text: string(text)},
		Metadata: maps.Clone(env.Metadata),
	}, nil
}
