// Package domain defines the core types shared across courier: node and
// message identifiers, the typed message envelope with its plaintext and
// ciphertext payload states, the directory lookup capability, and the two
// recoverable error kinds surfaced during identity bootstrap.
package domain
