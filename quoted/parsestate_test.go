package quoted

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStateString(t *testing.T) {
	require.Equal(t, "outside", stateOutside.String())
	require.Equal(t, "inside", stateInside.String())
	require.Equal(t, "pending delimiter", statePendingDelimiter.String())
	require.Equal(t, "parseState(3)", parseState(3).String())
}
