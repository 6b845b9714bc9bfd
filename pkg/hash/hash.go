// Package hash provides the default digest functions used to build
// transaction IDs and signing digests, mirroring the hash family Fabric
// uses when deriving a transaction ID from a nonce and creator (see
// protoutil.ComputeTxID in the Fabric peer).
package hash

import (
	"crypto/sha256"
	"crypto/sha512"

	"example.com/fabric-gateway-client/pkg/identity"
)

// SHA256 is the default digest function for the gateway client, matching
// the hash used by the Fabric peer to compute transaction IDs.
var SHA256 identity.Hash = func(message []byte) []byte {
	digest := sha256.Sum256(message)
	return digest[:]
}

// SHA384 is provided for MSPs configured with a SHA384-based CSP.
var SHA384 identity.Hash = func(message []byte) []byte {
	digest := sha512.Sum384(message)
	return digest[:]
}

// NONE passes the message through unmodified, useful only for identities
// whose Sign implementation performs its own hashing (e.g. Ed25519).
var NONE identity.Hash = func(message []byte) []byte {
	return message
}
