package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	start, end := DateRange(time.Time{}, now)
	assert.Equal(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2023, 3, 15, 10, 0, 0, 0, time.UTC), start)

	given := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	start, end = DateRange(given, now)
	assert.Equal(t, given, end)
	assert.Equal(t, time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC), start)
}

func TestMockLoader(t *testing.T) {
	m := &MockLoader{Price: 20, Days: 50}
	b, err := m.LoadBundle(context.Background(), "SZ000001", time.Time{}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.Equal(t, 50, b.Len())
	assert.Equal(t, "SZ000001", b.Symbol)
	assert.Equal(t, 12, b.Financials.Len())

	pairs, err := m.Resolve(context.Background(), []string{"SZ000001"})
	require.NoError(t, err)
	assert.Equal(t, "SZ000001", pairs[0].Name)

	m.Err = errors.New("feed down")
	_, err = m.LoadBundle(context.Background(), "SZ000001", time.Time{}, time.Time{})
	assert.EqualError(t, err, "feed down")
}

func TestStaticResolver(t *testing.T) {
	r := StaticResolver{"SH600000": "浦发银行"}
	pairs, err := r.Resolve(context.Background(), []string{"SH600000", "SZ999999"})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "浦发银行", pairs[0].Name)
}
