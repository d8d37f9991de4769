package strategy

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyle-team/staking-strategy-svc/internal/protocol"
	"github.com/pkg/errors"
)

// testEnv models the asset flows between the collaborators so conservation
// can be checked end to end: wrapped balances live in the held-asset ledger,
// unwrapped funds sit in `loose` until deposited or wrapped back.
type testEnv struct {
	self  common.Address
	loose *big.Int

	held     *fakeHeldAsset
	pool     *fakePool
	adapter  *fakeAdapter
	registry *fakeRegistry
	rescuer  *fakeRescuer
	events   *recordingSink
}

func newTestEnv() *testEnv {
	env := &testEnv{
		self:  common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		loose: new(big.Int),
		held: &fakeHeldAsset{
			self:     common.HexToAddress("0x00000000000000000000000000000000000000aa"),
			address:  common.HexToAddress("0x00000000000000000000000000000000000000bb"),
			balances: map[common.Address]*big.Int{},
		},
		registry: &fakeRegistry{roles: map[common.Address]map[protocol.Role]bool{}},
		rescuer:  &fakeRescuer{},
		events:   &recordingSink{},
	}
	env.pool = &fakePool{
		env:      env,
		asset:    common.HexToAddress("0x00000000000000000000000000000000000000cc"),
		staked:   new(big.Int),
		cooldown: protocol.Cooldown{Amount: new(big.Int)},
	}
	env.adapter = &fakeAdapter{env: env, underlying: env.pool.asset}

	return env
}

func (e *testEnv) setHeld(amount int64) {
	e.held.balances[e.self] = big.NewInt(amount)
}

func (e *testEnv) heldOf(addr common.Address) *big.Int {
	balance, ok := e.held.balances[addr]
	if !ok {
		return new(big.Int)
	}

	return balance
}

// fakeHeldAsset transfers always spend from the custody account, matching
// the collaborator contract.
type fakeHeldAsset struct {
	self     common.Address
	address  common.Address
	balances map[common.Address]*big.Int
}

func (a *fakeHeldAsset) Address() common.Address { return a.address }

func (a *fakeHeldAsset) BalanceOf(_ context.Context, holder common.Address) (*big.Int, error) {
	balance, ok := a.balances[holder]
	if !ok {
		return new(big.Int), nil
	}

	return new(big.Int).Set(balance), nil
}

func (a *fakeHeldAsset) Transfer(_ context.Context, to common.Address, amount *big.Int) error {
	balance, ok := a.balances[a.self]
	if !ok || balance.Cmp(amount) < 0 {
		return errors.New("transfer amount exceeds balance")
	}

	balance.Sub(balance, amount)
	if a.balances[to] == nil {
		a.balances[to] = new(big.Int)
	}
	a.balances[to].Add(a.balances[to], amount)

	return nil
}

type fakePool struct {
	env *testEnv

	asset            common.Address
	cooldownDuration time.Duration
	staked           *big.Int
	cooldown         protocol.Cooldown

	unstakeErr error
	calls      []string
}

func (p *fakePool) Asset(context.Context) (common.Address, error) { return p.asset, nil }

func (p *fakePool) CooldownDuration(context.Context) (time.Duration, error) {
	return p.cooldownDuration, nil
}

func (p *fakePool) Cooldown(context.Context, common.Address) (protocol.Cooldown, error) {
	return protocol.Cooldown{
		MaturesAt: p.cooldown.MaturesAt,
		Amount:    new(big.Int).Set(p.cooldown.Amount),
	}, nil
}

func (p *fakePool) MaxWithdraw(context.Context, common.Address) (*big.Int, error) {
	return new(big.Int).Set(p.staked), nil
}

func (p *fakePool) Deposit(_ context.Context, amount *big.Int) error {
	p.calls = append(p.calls, "deposit")
	if p.env.loose.Cmp(amount) < 0 {
		return errors.New("not enough unwrapped funds to deposit")
	}

	p.env.loose.Sub(p.env.loose, amount)
	p.staked.Add(p.staked, amount)

	return nil
}

func (p *fakePool) Withdraw(_ context.Context, amount *big.Int) error {
	p.calls = append(p.calls, "withdraw")
	if p.staked.Cmp(amount) < 0 {
		return errors.New("withdraw amount exceeds staked balance")
	}

	p.staked.Sub(p.staked, amount)
	p.env.loose.Add(p.env.loose, amount)

	return nil
}

func (p *fakePool) CooldownAssets(_ context.Context, amount *big.Int) error {
	p.calls = append(p.calls, "cooldownAssets")
	p.staked.Sub(p.staked, amount)
	p.cooldown = protocol.Cooldown{
		MaturesAt: time.Now().Add(p.cooldownDuration),
		Amount:    new(big.Int).Set(amount),
	}

	return nil
}

func (p *fakePool) CooldownShares(_ context.Context, shares *big.Int) error {
	p.calls = append(p.calls, "cooldownShares")

	return p.CooldownAssets(context.Background(), shares)
}

func (p *fakePool) Unstake(context.Context) error {
	p.calls = append(p.calls, "unstake")
	if p.unstakeErr != nil {
		return p.unstakeErr
	}

	p.env.loose.Add(p.env.loose, p.cooldown.Amount)
	p.cooldown.Amount = new(big.Int)

	return nil
}

type fakeAdapter struct {
	env        *testEnv
	underlying common.Address
}

func (a *fakeAdapter) Wrap(_ context.Context, amount *big.Int) error {
	if a.env.loose.Cmp(amount) < 0 {
		return errors.New("not enough unwrapped funds to wrap")
	}

	a.env.loose.Sub(a.env.loose, amount)
	if a.env.held.balances[a.env.self] == nil {
		a.env.held.balances[a.env.self] = new(big.Int)
	}
	a.env.held.balances[a.env.self].Add(a.env.held.balances[a.env.self], amount)

	return nil
}

func (a *fakeAdapter) Unwrap(_ context.Context, amount *big.Int) error {
	balance := a.env.heldOf(a.env.self)
	if balance.Cmp(amount) < 0 {
		return errors.New("not enough held funds to unwrap")
	}

	balance.Sub(balance, amount)
	a.env.loose.Add(a.env.loose, amount)

	return nil
}

func (a *fakeAdapter) UnderlyingAsset(context.Context) (common.Address, error) {
	return a.underlying, nil
}

type fakeRegistry struct {
	roles map[common.Address]map[protocol.Role]bool
}

func (r *fakeRegistry) grant(account common.Address, role protocol.Role) {
	if r.roles[account] == nil {
		r.roles[account] = map[protocol.Role]bool{}
	}
	r.roles[account][role] = true
}

func (r *fakeRegistry) HasRole(_ context.Context, account common.Address, role protocol.Role) (bool, error) {
	return r.roles[account][role], nil
}

type fakeRescuer struct {
	rescuedTo common.Address
	err       error
}

func (r *fakeRescuer) RescueNative(_ context.Context, to common.Address) error {
	if r.err != nil {
		return r.err
	}
	r.rescuedTo = to

	return nil
}

type recordingSink struct {
	events []Event
}

func (s *recordingSink) Emit(_ context.Context, event Event) error {
	s.events = append(s.events, event)

	return nil
}

func (s *recordingSink) last() Event {
	if len(s.events) == 0 {
		return Event{}
	}

	return s.events[len(s.events)-1]
}

func (s *recordingSink) ofKind(kind EventKind) []Event {
	var matched []Event
	for _, event := range s.events {
		if event.Kind == kind {
			matched = append(matched, event)
		}
	}

	return matched
}
