package gateway

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExecGatewayInvoke checks that a successful invocation returns the
// command's trimmed stdout.
func TestExecGatewayInvoke(t *testing.T) {
	t.Parallel()

	gw := NewExec("sh")
	out, err := gw.Invoke("-c", "printf '  hello world \n'")
	require.NoError(t, err)
	require.Equal(t, "hello world", out)
}

// TestExecGatewayFailure checks that a non-zero exit surfaces the captured
// stderr text through *Error.
func TestExecGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := NewExec("sh")
	out, err := gw.Invoke("-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	require.Empty(t, out)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	require.Equal(t, "boom", gwErr.Output)
	require.Contains(t, gwErr.Error(), "boom")
}

// TestExecGatewayLaunchFailure checks that a binary that cannot be launched
// still yields *Error.
func TestExecGatewayLaunchFailure(t *testing.T) {
	t.Parallel()

	gw := NewExec("/nonexistent/definitely-not-a-binary")
	_, err := gw.Invoke("decoderawtransaction", "00")
	require.Error(t, err)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
	require.NotNil(t, gwErr.Unwrap())
}

// TestDockerGatewayArgOrder checks the exact argument ordering of the
// container-proxied transport by substituting echo for the docker binary.
func TestDockerGatewayArgOrder(t *testing.T) {
	t.Parallel()

	gw := NewDocker("echo", "deadbeef", "bitcoin-cli")
	out, err := gw.Invoke("decoderawtransaction", "00ff")
	require.NoError(t, err)
	require.Equal(t, "exec deadbeef bitcoin-cli decoderawtransaction 00ff", out)
}

// TestDockerGatewayFailure checks that the container transport reports
// failures with the same contract as the direct one.
func TestDockerGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := NewDocker("/nonexistent/docker", "deadbeef", "bitcoin-cli")
	_, err := gw.Invoke("getrawtransaction", "00", "true")
	require.Error(t, err)

	var gwErr *Error
	require.True(t, errors.As(err, &gwErr))
}
