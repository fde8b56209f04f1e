package errors_test

import (
	"fmt"
	"testing"

	clienterrors "github.com/jrsteele09/ainote-client/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, clienterrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("keeps the chain", func(t *testing.T) {
		err := clienterrors.Wrapf(clienterrors.ErrTransport, "[Execute] %s %s", "GET", "/account/me")
		require.EqualError(t, err, "[Execute] GET /account/me: transport failure")
		require.True(t, clienterrors.Is(err, clienterrors.ErrTransport))
	})
}

func TestMissing(t *testing.T) {
	err := clienterrors.Missing("LogService.FindByID", "id")
	require.True(t, clienterrors.Is(err, clienterrors.ErrMissingParameter))
	require.Contains(t, err.Error(), "LogService.FindByID")

	var target interface{ Unwrap() error }
	require.True(t, clienterrors.As(fmt.Errorf("outer: %w", err), &target))
}
