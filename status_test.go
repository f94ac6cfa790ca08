package hed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusExpiry(t *testing.T) {
	m := statusInfo("saved")
	now := m.At

	require.False(t, m.Expired(now))
	require.False(t, m.Expired(now.Add(statusTTL)))
	require.True(t, m.Expired(now.Add(statusTTL+time.Millisecond)))
}

func TestStatusPersistentNeverExpires(t *testing.T) {
	for _, m := range []StatusMessage{
		statusSearch("Search: foo"),
		statusError("Not found"),
	} {
		require.True(t, m.Persistent)
		require.False(t, m.Expired(m.At.Add(time.Hour)))
	}
}

func TestStatusCategories(t *testing.T) {
	require.Equal(t, StatusNormal, statusInfo("x").Category)
	require.Equal(t, StatusSearch, statusSearch("x").Category)
	require.Equal(t, StatusError, statusError("x").Category)
}
