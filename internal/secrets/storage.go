package secrets

import (
	"crypto/ecdsa"
)

// Storage keeps the operator account key the strategy transacts with.
type Storage interface {
	GetOperatorKey() (*ecdsa.PrivateKey, error)
	SaveOperatorKey(key *ecdsa.PrivateKey) error
}
