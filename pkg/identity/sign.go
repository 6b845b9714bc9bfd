package identity

// Sign produces a digital signature over a message digest. It is invoked
// once per signing stage (proposal, transaction, commit status request,
// chaincode/block events request) with the digest that must appear signed
// in the corresponding request.
type Sign func(digest []byte) ([]byte, error)

// Hash computes a digest of a message prior to signing. SHA-256 is the
// default used throughout the protocol; it may be overridden per Gateway to
// match the hash family mandated by the channel's MSP configuration.
type Hash func(message []byte) []byte
