package capture

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/types"
)

// fetchParallelism bounds concurrent ledger_entry requests. Each request gets
// its own connection; public nodes rate-limit aggressively.
const fetchParallelism = 4

type ledgerCommand struct {
	request
	LedgerIndex any `json:"ledger_index"`
}

type ledgerResult struct {
	LedgerIndex uint32 `json:"ledger_index"`
	Ledger      struct {
		ParentHash      string `json:"parent_hash"`
		ParentCloseTime uint32 `json:"parent_close_time"`
		CloseTime       uint32 `json:"close_time"`
	} `json:"ledger"`
}

type feeCommand struct {
	request
}

type feeResult struct {
	Drops struct {
		BaseFee string `json:"base_fee"`
	} `json:"drops"`
}

type ledgerEntryCommand struct {
	request
	Index       string `json:"index"`
	LedgerIndex any    `json:"ledger_index"`
}

type ledgerEntryResult struct {
	Index string          `json:"index"`
	Node  json.RawMessage `json:"node"`
}

// Header fetches the validated ledger header and the current base fee,
// pinning the ledger sequence the entry fetches should read at.
func (c *Client) Header(ctx context.Context) (*snapshot.Header, error) {
	var lr ledgerResult
	if err := c.call(ctx, "ledger", &ledgerCommand{LedgerIndex: "validated"}, &lr); err != nil {
		return nil, err
	}
	parent, err := parseHash256(lr.Ledger.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("capture: ledger %d parent hash: %w", lr.LedgerIndex, err)
	}

	var fr feeResult
	if err := c.call(ctx, "fee", &feeCommand{}, &fr); err != nil {
		return nil, err
	}
	baseFee, err := strconv.ParseUint(fr.Drops.BaseFee, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("capture: base fee %q: %w", fr.Drops.BaseFee, err)
	}

	return &snapshot.Header{
		LedgerSeq:       lr.LedgerIndex,
		ParentCloseTime: lr.Ledger.ParentCloseTime,
		ParentHash:      parent,
		BaseFee:         uint32(baseFee),
	}, nil
}

// Entry fetches one ledger entry by keylet at the given ledger sequence and
// converts it to a snapshot record.
func (c *Client) Entry(ctx context.Context, keylet types.Hash256, ledgerSeq uint32) (*snapshot.Record, error) {
	var res ledgerEntryResult
	cmd := &ledgerEntryCommand{Index: keylet.String(), LedgerIndex: ledgerSeq}
	if err := c.call(ctx, "ledger_entry", cmd, &res); err != nil {
		return nil, err
	}
	fields, err := convertNode(res.Node)
	if err != nil {
		return nil, fmt.Errorf("capture: entry %s: %w", keylet, err)
	}
	return &snapshot.Record{Keylet: keylet, Fields: fields}, nil
}

// Capture snapshots the given keylets from endpoint into store: header first,
// then the entries, fetched concurrently over per-worker connections. Keylets
// the ledger does not hold are skipped, not errors; a simulated contract is
// allowed to probe for entries that do not exist.
func Capture(ctx context.Context, endpoint string, keylets []types.Hash256, store *snapshot.Store) error {
	c, err := Dial(ctx, endpoint)
	if err != nil {
		return err
	}
	header, err := c.Header(ctx)
	c.Close()
	if err != nil {
		return err
	}
	if err := store.PutHeader(header); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchParallelism)
	records := make([]*snapshot.Record, len(keylets))
	for i, keylet := range keylets {
		g.Go(func() error {
			wc, err := Dial(ctx, endpoint)
			if err != nil {
				return err
			}
			defer wc.Close()

			rec, err := wc.Entry(ctx, keylet, header.LedgerSeq)
			if err != nil {
				if isEntryNotFound(err) {
					return nil
				}
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// The store write is single-threaded; pebble batching is not worth it at
	// snapshot sizes.
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if err := store.Put(rec); err != nil {
			return err
		}
	}
	return nil
}
