package wrappedtoken

import (
	"context"
	"database/sql"
	"fmt"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/russross/meddler"
)

// WrappedToken is a token of another network deployed on this one by the bridge
type WrappedToken struct {
	WrappedTokenAddress common.Address `meddler:"wrapped_token_address,address" json:"wrapped_token_address"`
	OriginNetwork       uint32         `meddler:"origin_network" json:"origin_network"`
	OriginTokenAddress  common.Address `meddler:"origin_token_address,address" json:"origin_token_address"`
	Metadata            []byte         `meddler:"metadata" json:"metadata"`
}

// TokenInfo returns the origin of the wrapped token
func (w *WrappedToken) TokenInfo() bridgetypes.TokenInfo {
	return bridgetypes.TokenInfo{
		OriginNetwork:      w.OriginNetwork,
		OriginTokenAddress: w.OriginTokenAddress,
	}
}

// Store keeps the wrapped tokens deployed on this network, indexed both by origin and by address
type Store struct {
	db        *sql.DB
	byOrigin  *lru.Cache[bridgetypes.TokenInfo, *WrappedToken]
	byAddress *lru.Cache[common.Address, *WrappedToken]
}

func NewStore(database *sql.DB, cacheSize int) (*Store, error) {
	byOrigin, err := lru.New[bridgetypes.TokenInfo, *WrappedToken](cacheSize)
	if err != nil {
		return nil, err
	}
	byAddress, err := lru.New[common.Address, *WrappedToken](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:        database,
		byOrigin:  byOrigin,
		byAddress: byAddress,
	}, nil
}

func (s *Store) cache(w *WrappedToken) {
	s.byOrigin.Add(w.TokenInfo(), w)
	s.byAddress.Add(w.WrappedTokenAddress, w)
}

// Add stores a new wrapped token. It's cached once tx is committed
func (s *Store) Add(tx db.Txer, w *WrappedToken) error {
	if err := meddler.Insert(tx, "token_wrapped", w); err != nil {
		return fmt.Errorf("error inserting wrapped token %s: %w", w.WrappedTokenAddress.Hex(), err)
	}
	tx.AddCommitCallback(func() { s.cache(w) })
	return nil
}

// GetByOrigin returns the wrapped token of the given origin token. It returns db.ErrNotFound if
// the token has not been deployed. If tx is nil the committed state is used
func (s *Store) GetByOrigin(
	tx db.Querier, originNetwork uint32, originTokenAddress common.Address,
) (*WrappedToken, error) {
	key := bridgetypes.TokenInfo{OriginNetwork: originNetwork, OriginTokenAddress: originTokenAddress}
	if w, ok := s.byOrigin.Get(key); ok {
		return w, nil
	}
	querier, committed := s.querier(tx)
	w := &WrappedToken{}
	err := meddler.QueryRow(querier, w, `
		SELECT * FROM token_wrapped WHERE origin_network = $1 AND origin_token_address = $2;
	`, originNetwork, originTokenAddress.Hex())
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	if committed {
		s.cache(w)
	}
	return w, nil
}

// GetByAddress returns the wrapped token deployed at wrappedAddress. It returns db.ErrNotFound if
// the address is not a wrapped token. If tx is nil the committed state is used
func (s *Store) GetByAddress(tx db.Querier, wrappedAddress common.Address) (*WrappedToken, error) {
	if w, ok := s.byAddress.Get(wrappedAddress); ok {
		return w, nil
	}
	querier, committed := s.querier(tx)
	w := &WrappedToken{}
	err := meddler.QueryRow(querier, w,
		`SELECT * FROM token_wrapped WHERE wrapped_token_address = $1;`, wrappedAddress.Hex(),
	)
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}
	if committed {
		s.cache(w)
	}
	return w, nil
}

// GetAll returns every wrapped token deployed on this network
func (s *Store) GetAll(ctx context.Context) ([]*WrappedToken, error) {
	tokens := []*WrappedToken{}
	err := meddler.QueryAll(s.db, &tokens, `SELECT * FROM token_wrapped ORDER BY origin_network, origin_token_address;`)
	return tokens, err
}

// querier returns the querier to use and whether it only sees committed data
func (s *Store) querier(tx db.Querier) (db.Querier, bool) {
	if tx == nil {
		return s.db, true
	}
	return tx, false
}
