package vault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	cdkcommon "github.com/0xPolygon/cdk-bridge/common"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/0xPolygon/cdk-bridge/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/russross/meddler"
)

type token struct {
	Address  common.Address `meddler:"address,address"`
	Name     string         `meddler:"name"`
	Symbol   string         `meddler:"symbol"`
	Decimals uint8          `meddler:"decimals"`
	Wrapped  bool           `meddler:"wrapped"`
}

type balance struct {
	Token  common.Address `meddler:"token,address"`
	Holder common.Address `meddler:"holder,address"`
	Amount *big.Int       `meddler:"amount,bigint"`
}

// Vault is a balance ledger that moves the value of deposits and claims. Funds locked by the bridge
// are held by the bridge address. Every operation runs on the tx of the bridge operation, so value
// only moves if the whole operation succeeds
type Vault struct {
	db            *sql.DB
	bridgeAddress common.Address
	log           *log.Logger
}

// New returns a Vault and applies the configured tokens and allocations. Allocations are only credited
// the first time, when the ledger is empty
func New(ctx context.Context, database *sql.DB, bridgeAddress common.Address, cfg Config) (*Vault, error) {
	v := &Vault{
		db:            database,
		bridgeAddress: bridgeAddress,
		log:           log.WithFields("module", "vault"),
	}
	tx, err := db.NewTx(ctx, database)
	if err != nil {
		return nil, err
	}
	if err := v.init(tx, cfg); err != nil {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			v.log.Errorf("error while rolling back tx %v", errRllbck)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vault) init(tx db.Txer, cfg Config) error {
	for _, t := range cfg.Tokens {
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO token (address, name, symbol, decimals, wrapped) VALUES ($1, $2, $3, $4, FALSE);
		`, t.Address.Hex(), t.Name, t.Symbol, t.Decimals); err != nil {
			return fmt.Errorf("error adding token %s: %w", t.Address.Hex(), err)
		}
	}
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM balance;`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, a := range cfg.Allocations {
		amount, err := cdkcommon.ParseAmount(a.Amount)
		if err != nil {
			return fmt.Errorf("invalid allocation for %s: %w", a.Holder.Hex(), err)
		}
		if err := v.credit(tx, a.Token, a.Holder, amount); err != nil {
			return err
		}
		v.log.Infof("allocated %s of token %s to %s", amount.String(), a.Token.Hex(), a.Holder.Hex())
	}
	return nil
}

func (v *Vault) getBalance(tx db.Querier, tokenAddr, holder common.Address) (*big.Int, error) {
	b := &balance{}
	err := meddler.QueryRow(tx, b,
		`SELECT * FROM balance WHERE token = $1 AND holder = $2;`, tokenAddr.Hex(), holder.Hex(),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	return b.Amount, nil
}

func (v *Vault) setBalance(tx db.Querier, tokenAddr, holder common.Address, amount *big.Int) error {
	_, err := tx.Exec(
		`INSERT OR REPLACE INTO balance (token, holder, amount) VALUES ($1, $2, $3);`,
		tokenAddr.Hex(), holder.Hex(), amount.String(),
	)
	return err
}

func (v *Vault) credit(tx db.Querier, tokenAddr, holder common.Address, amount *big.Int) error {
	current, err := v.getBalance(tx, tokenAddr, holder)
	if err != nil {
		return err
	}
	return v.setBalance(tx, tokenAddr, holder, new(big.Int).Add(current, amount))
}

func (v *Vault) debit(tx db.Querier, tokenAddr, holder common.Address, amount *big.Int) error {
	current, err := v.getBalance(tx, tokenAddr, holder)
	if err != nil {
		return err
	}
	if current.Cmp(amount) < 0 {
		return fmt.Errorf(
			"%w: %s has %s of token %s, %s required",
			bridgetypes.ErrAmountOrBalanceMismatch, holder.Hex(), current.String(), tokenAddr.Hex(), amount.String(),
		)
	}
	return v.setBalance(tx, tokenAddr, holder, new(big.Int).Sub(current, amount))
}

func (v *Vault) transfer(tx db.Querier, tokenAddr, from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: invalid amount %v", bridgetypes.ErrAmountOrBalanceMismatch, amount)
	}
	if err := v.debit(tx, tokenAddr, from, amount); err != nil {
		return err
	}
	return v.credit(tx, tokenAddr, to, amount)
}

// LockAsset moves amount of token from the depositor to the bridge. The permit data is not needed
// by the ledger since the depositor is already authenticated
func (v *Vault) LockAsset(
	ctx context.Context, tx db.Querier, from, tokenAddr common.Address, amount *big.Int, permitData []byte,
) error {
	return v.transfer(tx, tokenAddr, from, v.bridgeAddress, amount)
}

// ReleaseAsset moves amount of token from the bridge to the receiver
func (v *Vault) ReleaseAsset(
	ctx context.Context, tx db.Querier, tokenAddr, to common.Address, amount *big.Int,
) error {
	return v.transfer(tx, tokenAddr, v.bridgeAddress, to, amount)
}

// BurnWrapped destroys amount of a wrapped token owned by from
func (v *Vault) BurnWrapped(
	ctx context.Context, tx db.Querier, from, wrapped common.Address, amount *big.Int,
) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: invalid amount %v", bridgetypes.ErrAmountOrBalanceMismatch, amount)
	}
	return v.debit(tx, wrapped, from, amount)
}

// MintWrapped creates amount of a wrapped token for to
func (v *Vault) MintWrapped(
	ctx context.Context, tx db.Querier, wrapped, to common.Address, amount *big.Int,
) error {
	if amount == nil || amount.Sign() < 0 {
		return fmt.Errorf("%w: invalid amount %v", bridgetypes.ErrAmountOrBalanceMismatch, amount)
	}
	isWrapped, err := v.isWrapped(tx, wrapped)
	if err != nil {
		return err
	}
	if !isWrapped {
		return fmt.Errorf("token %s has not been deployed as a wrapped token", wrapped.Hex())
	}
	return v.credit(tx, wrapped, to, amount)
}

// DeployWrapped registers a wrapped token with the name, symbol and decimals of metadata. Metadata that
// can't be decoded gets the fallback values
func (v *Vault) DeployWrapped(ctx context.Context, tx db.Querier, wrapped common.Address, metadata []byte) error {
	m, err := DecodeMetadata(metadata)
	if err != nil {
		v.log.Warnf("using fallback metadata for wrapped token %s: %v", wrapped.Hex(), err)
		m = fallbackMetadata()
	}
	if _, err := tx.Exec(`
		INSERT INTO token (address, name, symbol, decimals, wrapped) VALUES ($1, $2, $3, $4, TRUE);
	`, wrapped.Hex(), m.Name, m.Symbol, m.Decimals); err != nil {
		return fmt.Errorf("error deploying wrapped token %s: %w", wrapped.Hex(), err)
	}
	return nil
}

// TokenMetadata returns abi.encode(name, symbol, decimals) of a token. Unknown tokens get
// NO_NAME, NO_SYMBOL and 18 decimals
func (v *Vault) TokenMetadata(ctx context.Context, tx db.Querier, tokenAddr common.Address) ([]byte, error) {
	t, err := v.getToken(tx, tokenAddr)
	if errors.Is(err, db.ErrNotFound) {
		return EncodeMetadata(fallbackMetadata())
	}
	if err != nil {
		return nil, err
	}
	return EncodeMetadata(TokenMetadata{Name: t.Name, Symbol: t.Symbol, Decimals: t.Decimals})
}

// BalanceOf returns the committed balance of holder
func (v *Vault) BalanceOf(ctx context.Context, tokenAddr, holder common.Address) (*big.Int, error) {
	return v.getBalance(v.db, tokenAddr, holder)
}

func (v *Vault) getToken(tx db.Querier, tokenAddr common.Address) (*token, error) {
	t := &token{}
	if err := meddler.QueryRow(tx, t, `SELECT * FROM token WHERE address = $1;`, tokenAddr.Hex()); err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	return t, nil
}

func (v *Vault) isWrapped(tx db.Querier, tokenAddr common.Address) (bool, error) {
	t, err := v.getToken(tx, tokenAddr)
	if errors.Is(err, db.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return t.Wrapped, nil
}
