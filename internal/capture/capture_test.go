package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

const (
	genesisAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	parentHashHex  = "2b6ac232aa4c4be41bf49d2459fa4a0347e1b543a4c92fcee0821c0201e2e9a8"
)

// fakeNode serves a fixed set of ledger entries over the XRPL websocket
// command protocol.
type fakeNode struct {
	ledgerSeq uint32
	entries   map[string]string
}

func (n *fakeNode) handler() http.Handler {
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			var cmd struct {
				ID      uint64 `json:"id"`
				Command string `json:"command"`
				Index   string `json:"index"`
			}
			if err := ws.ReadJSON(&cmd); err != nil {
				return
			}
			var reply string
			switch cmd.Command {
			case "ledger":
				reply = fmt.Sprintf(`{"id":%d,"type":"response","status":"success","result":{
					"ledger_index":%d,
					"ledger":{"parent_hash":%q,"parent_close_time":771234560,"close_time":771234570}}}`,
					cmd.ID, n.ledgerSeq, parentHashHex)
			case "fee":
				reply = fmt.Sprintf(`{"id":%d,"type":"response","status":"success","result":{
					"drops":{"base_fee":"10"}}}`, cmd.ID)
			case "ledger_entry":
				node, ok := n.entries[strings.ToLower(cmd.Index)]
				if !ok {
					reply = fmt.Sprintf(`{"id":%d,"type":"response","status":"error",
						"error":"entryNotFound","error_message":"Entry not found."}`, cmd.ID)
					break
				}
				reply = fmt.Sprintf(`{"id":%d,"type":"response","status":"success","result":{
					"index":%q,"node":%s}}`, cmd.ID, cmd.Index, node)
			default:
				reply = fmt.Sprintf(`{"id":%d,"type":"response","status":"error",
					"error":"unknownCmd","error_message":"Unknown command."}`, cmd.ID)
			}
			if err := ws.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				return
			}
		}
	})
}

func startNode(t *testing.T, n *fakeNode) string {
	t.Helper()
	srv := httptest.NewServer(n.handler())
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func escrowNode() string {
	return fmt.Sprintf(`{
		"LedgerEntryType":"Escrow",
		"Flags":0,
		"Account":%q,
		"Destination":%q,
		"Amount":"1000000",
		"FinishAfter":771240000,
		"OwnerNode":"0000000000000000",
		"PreviousTxnID":%q,
		"PreviousTxnLgrSeq":12345,
		"Memos":[{"Memo":{"MemoType":"73776170","MemoData":"BEEF"}}]
	}`, genesisAddress, genesisAddress, strings.ToUpper(parentHashHex))
}

func TestHeader(t *testing.T) {
	endpoint := startNode(t, &fakeNode{ledgerSeq: 90_000_001})

	c, err := Dial(context.Background(), endpoint)
	require.NoError(t, err)
	defer c.Close()

	h, err := c.Header(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(90_000_001), h.LedgerSeq)
	assert.Equal(t, uint32(771_234_560), h.ParentCloseTime)
	assert.Equal(t, parentHashHex, h.ParentHash.String())
	assert.Equal(t, uint32(10), h.BaseFee)
}

func TestEntryConversion(t *testing.T) {
	keylet := types.Hash256{0x11, 0x22}
	endpoint := startNode(t, &fakeNode{
		ledgerSeq: 1,
		entries:   map[string]string{keylet.String(): escrowNode()},
	})

	c, err := Dial(context.Background(), endpoint)
	require.NoError(t, err)
	defer c.Close()

	rec, err := c.Entry(context.Background(), keylet, 1)
	require.NoError(t, err)
	assert.Equal(t, keylet, rec.Keylet)

	entryType := rec.Fields[int32(sfield.LedgerEntryType.Code())]
	require.NotNil(t, entryType)
	assert.Equal(t, uint16(0x0075), binary.LittleEndian.Uint16(entryType.Leaf))

	genesis, err := types.AccountIDFromAddress(genesisAddress)
	require.NoError(t, err)
	assert.Equal(t, genesis[:], rec.Fields[int32(sfield.Account.Code())].Leaf)

	finishAfter := rec.Fields[int32(sfield.FinishAfter.Code())]
	require.NotNil(t, finishAfter)
	assert.Equal(t, uint32(771_240_000), binary.LittleEndian.Uint32(finishAfter.Leaf))

	// XRP amounts keep the 8-byte wire form with the positive bit set.
	amount := rec.Fields[int32(sfield.Amount.Code())]
	require.NotNil(t, amount)
	assert.Equal(t, uint64(1<<62|1_000_000), binary.BigEndian.Uint64(amount.Leaf))

	memos := rec.Fields[int32(sfield.Memos)]
	require.NotNil(t, memos)
	require.Len(t, memos.Array, 1)
	memo := memos.Array[0][int32(sfield.Memo)]
	require.NotNil(t, memo)
	assert.Equal(t, []byte("swap"), memo.Object[int32(sfield.MemoType.Code())].Leaf)
	assert.Equal(t, []byte{0xBE, 0xEF}, memo.Object[int32(sfield.MemoData.Code())].Leaf)
}

func TestCaptureSkipsMissingEntries(t *testing.T) {
	held := types.Hash256{0x11, 0x22}
	missing := types.Hash256{0x33}
	endpoint := startNode(t, &fakeNode{
		ledgerSeq: 42,
		entries:   map[string]string{held.String(): escrowNode()},
	})

	store, err := snapshot.OpenMem()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, Capture(context.Background(), endpoint,
		[]types.Hash256{held, missing}, store))

	h, err := store.GetHeader()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), h.LedgerSeq)

	_, err = store.Get(held)
	assert.NoError(t, err)
	_, err = store.Get(missing)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	n, err := store.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCancelledContextAbortsCall(t *testing.T) {
	// A node that accepts the connection and never answers.
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()
	endpoint := "ws" + strings.TrimPrefix(srv.URL, "http")

	ctx, cancel := context.WithCancel(context.Background())
	c, err := Dial(ctx, endpoint)
	require.NoError(t, err)
	defer c.Close()

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = c.Header(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsEntryNotFound(t *testing.T) {
	assert.False(t, isEntryNotFound(nil))
	assert.False(t, isEntryNotFound(context.Canceled))
	assert.False(t, isEntryNotFound(errors.New("websocket: close 1006")))
	assert.True(t, isEntryNotFound(
		fmt.Errorf("ledger_entry: entryNotFound: Entry not found")))
}

func TestEncodeIOUValue(t *testing.T) {
	decode := func(f types.OpaqueFloat) (mantissa uint64, exponent int, positive bool) {
		bits := binary.BigEndian.Uint64(f[:])
		return bits & (1<<54 - 1), int(bits>>54&0xFF) - 97, bits&(1<<62) != 0
	}

	one, err := encodeIOUValue("1")
	require.NoError(t, err)
	mantissa, exponent, positive := decode(one)
	assert.Equal(t, uint64(1_000_000_000_000_000), mantissa)
	assert.Equal(t, -15, exponent)
	assert.True(t, positive)

	for _, equivalent := range []string{"1.0", "0.1e1", "10e-1", "+1"} {
		got, err := encodeIOUValue(equivalent)
		require.NoError(t, err)
		assert.Equal(t, one, got, equivalent)
	}

	negative, err := encodeIOUValue("-12.5")
	require.NoError(t, err)
	mantissa, exponent, positive = decode(negative)
	assert.Equal(t, uint64(1_250_000_000_000_000), mantissa)
	assert.Equal(t, -14, exponent)
	assert.False(t, positive)

	zero, err := encodeIOUValue("0.000")
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, binary.BigEndian.Uint64(zero[:]))

	_, err = encodeIOUValue("1e99")
	assert.Error(t, err)
}
