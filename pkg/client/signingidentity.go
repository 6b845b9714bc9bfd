package client

import (
	"example.com/fabric-gateway-client/pkg/hash"
	"example.com/fabric-gateway-client/pkg/identity"
	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/msp"
	"github.com/pkg/errors"
)

// signingIdentity binds a connecting identity to the signing and hashing
// capabilities supplied at Connect time. It is held, never copied, by the
// Gateway and shared by every Network/Contract/Proposal/Transaction/Commit
// built underneath it.
type signingIdentity struct {
	id   identity.Identity
	sign identity.Sign
	hash identity.Hash
}

func newSigningIdentity(id identity.Identity) *signingIdentity {
	return &signingIdentity{
		id:   id,
		hash: hash.SHA256,
	}
}

// Creator returns the serialized identity bytes carried on every request
// header: a marshalled msp.SerializedIdentity{Mspid, IdBytes}.
func (s *signingIdentity) Creator() ([]byte, error) {
	serialized := &msp.SerializedIdentity{
		Mspid:   s.id.MspID(),
		IdBytes: s.id.Credentials(),
	}

	creator, err := util.Marshal(serialized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal serialized identity")
	}

	return creator, nil
}

// Sign produces a signature over digest using the configured signer. It
// fails with Unsupported if no in-process signer was configured, in which
// case the caller must supply an offline signature instead.
func (s *signingIdentity) Sign(digest []byte) ([]byte, error) {
	if s.sign == nil {
		return nil, newUnsupportedError("no signer configured; supply an offline signature instead")
	}

	signature, err := s.sign(digest)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign message")
	}

	return signature, nil
}

// Hash digests message using the configured hash function, defaulting to
// SHA-256.
func (s *signingIdentity) Hash(message []byte) []byte {
	return s.hash(message)
}
