package signer

import (
	"testing"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/stretchr/testify/require"

	"github.com/thanhnp/txsigner/internal/gateway"
)

// TestResolverFound checks the found path: the queried index yields the
// output's value and spending script.
func TestResolverFound(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		require.Equal(t, "getrawtransaction", command)
		require.Equal(t, []string{txidA, "true"}, args)
		return txInfoResult(t,
			voutEntry(1.0, "0014aaaa"),
			voutEntry(0.25, "0014bbbb"),
		), nil
	}

	prev, err := NewResolver(gw).Resolve(txidA, 1)
	require.NoError(t, err)
	require.NotNil(t, prev)
	require.Equal(t, txidA, prev.Txid)
	require.Equal(t, uint32(1), prev.Vout)
	require.Equal(t, "0014bbbb", prev.ScriptPubKey)
	require.NotNil(t, prev.Amount)
	require.Equal(t, 0.25, *prev.Amount)
}

// TestResolverUnknownTx checks the three-way contract: a transaction the
// node does not know yields nil without an error.
func TestResolverUnknownTx(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		return "", notFoundErr()
	}

	prev, err := NewResolver(gw).Resolve(txidB, 0)
	require.NoError(t, err)
	require.Nil(t, prev)
}

// TestResolverIndexOutOfRange checks that an out-of-range output index is
// absence, not failure.
func TestResolverIndexOutOfRange(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		return txInfoResult(t, voutEntry(1.0, "0014aaaa")), nil
	}

	prev, err := NewResolver(gw).Resolve(txidA, 5)
	require.NoError(t, err)
	require.Nil(t, prev)
}

// TestResolverGatewayFailure checks that failures other than "unknown
// transaction" stay fatal.
func TestResolverGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		return "", &gateway.Error{
			Command: "bitcoin-cli",
			Output:  "error code: -28\nerror message:\nLoading block index...",
		}
	}

	prev, err := NewResolver(gw).Resolve(txidA, 0)
	require.Error(t, err)
	require.Nil(t, prev)
}

// TestResolverMalformedResponse checks that an unparseable node response is
// an error, not absence.
func TestResolverMalformedResponse(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		return "}{", nil
	}

	_, err := NewResolver(gw).Resolve(txidA, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse transaction info")
}

// TestResolverRejectsBadTxid checks that a malformed referenced txid never
// reaches the node.
func TestResolverRejectsBadTxid(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{t: t}
	gw.handler = func(command string, args []string) (string, error) {
		t.Fatal("gateway should not be invoked")
		return "", nil
	}

	_, err := NewResolver(gw).Resolve("not-a-txid", 0)
	require.Error(t, err)
	require.Empty(t, gw.calls)
}

// TestBuildRequest checks the nothing-to-sign signal.
func TestBuildRequest(t *testing.T) {
	t.Parallel()

	_, ok := BuildRequest("00raw", nil)
	require.False(t, ok)

	amount := 1.5
	prevOuts := []btcjson.RawTxWitnessInput{
		{Txid: txidA, Vout: 0, ScriptPubKey: "0014aaaa", Amount: &amount},
	}
	req, ok := BuildRequest("00raw", prevOuts)
	require.True(t, ok)
	require.Equal(t, "00raw", req.RawTx)
	require.Equal(t, prevOuts, req.PrevOuts)
}
