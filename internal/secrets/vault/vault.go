package vault

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	client "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
)

const keyOperator = "operator_key"

type Storage struct {
	client *client.KVv2
}

func NewStorage(client *client.KVv2) *Storage {
	return &Storage{
		client: client,
	}
}

func (s *Storage) GetOperatorKey() (*ecdsa.PrivateKey, error) {
	kvData, err := s.client.Get(context.Background(), keyOperator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load operator key")
	}
	if kvData == nil {
		return nil, errors.New("operator key not found")
	}

	val, ok := kvData.Data["value"].(string)
	if !ok {
		return nil, errors.New("operator key value not found")
	}

	key, err := crypto.HexToECDSA(val)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode operator key")
	}

	return key, nil
}

func (s *Storage) SaveOperatorKey(key *ecdsa.PrivateKey) error {
	raw := crypto.FromECDSA(key)

	_, err := s.client.Put(context.Background(), keyOperator, map[string]interface{}{
		"value": common.Bytes2Hex(raw),
	})
	if err != nil {
		return errors.Wrap(err, "failed to save operator key")
	}

	return nil
}
