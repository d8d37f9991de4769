package config

import (
	"cmp"
	"os"

	vault "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
	"gitlab.com/distributed_lab/kit/comfig"
)

// Vault connection parameters come from the environment rather than the
// config file so the token never ends up on disk next to the service config.
const (
	VaultAddressEnv = "VAULT_PATH"
	VaultTokenEnv   = "VAULT_TOKEN"
	VaultMountEnv   = "MOUNT_PATH"

	defaultMountPath = "secret"
)

type Vaulter interface {
	VaultClient() *vault.KVv2
}

type vaulter struct {
	once comfig.Once
}

func NewVaulter() Vaulter {
	return &vaulter{}
}

func (v *vaulter) VaultClient() *vault.KVv2 {
	return v.once.Do(func() interface{} {
		addr := os.Getenv(VaultAddressEnv)
		if addr == "" {
			panic(errors.New(VaultAddressEnv + " is not set"))
		}

		conf := vault.DefaultConfig()
		conf.Address = addr

		client, err := vault.NewClient(conf)
		if err != nil {
			panic(errors.Wrap(err, "failed to create vault client"))
		}
		client.SetToken(os.Getenv(VaultTokenEnv))

		return client.KVv2(cmp.Or(os.Getenv(VaultMountEnv), defaultMountPath))
	}).(*vault.KVv2)
}
