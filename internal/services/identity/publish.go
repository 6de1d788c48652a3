package identity

import "sync/atomic"

// shared is the process-wide identity slot. Written exactly once by
// Publish; read-only afterwards, safe for concurrent readers without
// locks.
var shared atomic.Pointer[CryptoIdentity]

// Publish stores ci as the process identity. It must be called exactly
// once; a second call means two code paths tried to initialize crypto,
// and overwriting active key material mid-run is unsafe, so Publish
// panics instead of resolving the race.
func Publish(ci *CryptoIdentity) {
	if ci == nil {
		panic("identity: Publish called with nil identity")
	}
	if !shared.CompareAndSwap(nil, ci) {
		panic("identity: tried to publish the crypto identity twice")
	}
}

// Published returns the process identity, or false if none has been
// published yet.
func Published() (*CryptoIdentity, bool) {
	ci := shared.Load()
	return ci, ci != nil
}
