package protocol

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifies a permission in the cluster registry.
type Role [32]byte

var (
	RolePauser        = roleId("STRATEGY_PAUSER_ROLE")
	RoleCooldownAdmin = roleId("STRATEGY_COOLDOWN_ROLE")
)

func roleId(name string) Role {
	var role Role
	copy(role[:], crypto.Keccak256([]byte(name)))

	return role
}
