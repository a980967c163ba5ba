package claimbitmap

import (
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	bridgetypes "github.com/0xPolygon/cdk-bridge/bridge/types"
	"github.com/0xPolygon/cdk-bridge/db"
	"github.com/russross/meddler"
)

// log2 of the amount of bits per word
const bitsPerWord = 8

type word struct {
	WordPos *big.Int `meddler:"word_pos,bigint"`
	Bitmap  *big.Int `meddler:"bitmap,bigint"`
}

// Bitmap flags the global indexes that have been claimed. Each word holds 256 consecutive indexes.
// Bits are never cleared
type Bitmap struct {
	db *sql.DB
}

func New(database *sql.DB) *Bitmap {
	return &Bitmap{db: database}
}

// bitmapPositions returns the word and the bit inside the word of a global index
func bitmapPositions(globalIndex *big.Int) (wordPos *big.Int, bitPos uint) {
	wordPos = new(big.Int).Rsh(globalIndex, bitsPerWord)
	bitPos = uint(new(big.Int).And(globalIndex, big.NewInt(0xff)).Uint64())
	return wordPos, bitPos
}

func (b *Bitmap) getWord(tx db.Querier, wordPos *big.Int) (*word, error) {
	w := &word{}
	err := meddler.QueryRow(tx, w, `SELECT * FROM claimed_bitmap WHERE word_pos = $1;`, wordPos.String())
	if errors.Is(err, sql.ErrNoRows) {
		return &word{WordPos: wordPos, Bitmap: big.NewInt(0)}, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// IsClaimed returns true if the bit of globalIndex is set
func (b *Bitmap) IsClaimed(tx db.Querier, globalIndex *big.Int) (bool, error) {
	if tx == nil {
		tx = b.db
	}
	wordPos, bitPos := bitmapPositions(globalIndex)
	w, err := b.getWord(tx, wordPos)
	if err != nil {
		return false, err
	}
	return w.Bitmap.Bit(int(bitPos)) == 1, nil
}

// SetClaimed sets the bit of globalIndex. It fails with ErrAlreadyClaimed if it was already set
func (b *Bitmap) SetClaimed(tx db.Querier, globalIndex *big.Int) error {
	wordPos, bitPos := bitmapPositions(globalIndex)
	w, err := b.getWord(tx, wordPos)
	if err != nil {
		return err
	}
	if w.Bitmap.Bit(int(bitPos)) == 1 {
		return fmt.Errorf("%w: global index %s", bridgetypes.ErrAlreadyClaimed, globalIndex.String())
	}
	w.Bitmap = new(big.Int).SetBit(w.Bitmap, int(bitPos), 1)
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO claimed_bitmap (word_pos, bitmap) VALUES ($1, $2);`,
		w.WordPos.String(), w.Bitmap.String(),
	); err != nil {
		return fmt.Errorf("error storing claimed bitmap word %s: %w", wordPos.String(), err)
	}
	return nil
}
