// Package contracts holds the ABI fragments of the on-chain collaborators:
// the yield-bearing staking pool, the wrap adapter, the held ERC-20 asset
// and the cluster authorization registry.
package contracts

const StakingPoolABI = `[
	{"type":"function","name":"asset","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"cooldownDuration","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint24"}]},
	{"type":"function","name":"cooldowns","stateMutability":"view","inputs":[{"name":"holder","type":"address"}],"outputs":[{"name":"cooldownEnd","type":"uint104"},{"name":"underlyingAmount","type":"uint152"}]},
	{"type":"function","name":"maxWithdraw","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"deposit","stateMutability":"nonpayable","inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"},{"name":"owner","type":"address"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"type":"function","name":"cooldownAssets","stateMutability":"nonpayable","inputs":[{"name":"assets","type":"uint256"}],"outputs":[{"name":"shares","type":"uint256"}]},
	{"type":"function","name":"cooldownShares","stateMutability":"nonpayable","inputs":[{"name":"shares","type":"uint256"}],"outputs":[{"name":"assets","type":"uint256"}]},
	{"type":"function","name":"unstake","stateMutability":"nonpayable","inputs":[{"name":"receiver","type":"address"}],"outputs":[]}
]`

const WrapAdapterABI = `[
	{"type":"function","name":"underlyingAsset","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"wrap","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"unwrap","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const ERC20ABI = `[
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

const ClusterRegistryABI = `[
	{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"role","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]}
]`
