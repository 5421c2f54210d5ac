package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBundle(n int) *TimeSeriesBundle {
	b := &TimeSeriesBundle{Symbol: "SZ000001", Sector: []string{"银行"}}
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		b.Date = append(b.Date, start.AddDate(0, 0, i))
		b.Close = append(b.Close, 10)
		b.High = append(b.High, 10.5)
		b.Low = append(b.Low, 9.5)
		b.Volume = append(b.Volume, 1e6)
		b.TotalCap = append(b.TotalCap, 1e8)
		b.EPS = append(b.EPS, 1)
		b.EPSDiluted = append(b.EPSDiluted, 5)
		b.ROE = append(b.ROE, 10)
	}
	return b
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *TimeSeriesBundle)
		wantField string
	}{
		{"valid", func(b *TimeSeriesBundle) {}, ""},
		{"empty dates", func(b *TimeSeriesBundle) { b.Date = nil }, "date"},
		{"missing close", func(b *TimeSeriesBundle) { b.Close = nil }, "close"},
		{"short volume", func(b *TimeSeriesBundle) { b.Volume = b.Volume[:2] }, "volume"},
		{"missing tcap", func(b *TimeSeriesBundle) { b.TotalCap = nil }, "tcap"},
		{"dates out of order", func(b *TimeSeriesBundle) { b.Date[1], b.Date[2] = b.Date[2], b.Date[1] }, "date"},
		{"misaligned financials", func(b *TimeSeriesBundle) {
			b.Financials.Date = []time.Time{time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)}
		}, "financials.mr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBundle(5)
			tt.mutate(b)
			err := b.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var de *DataError
			require.True(t, errors.As(err, &de), "got %v", err)
			assert.Equal(t, tt.wantField, de.Field)
		})
	}
}

func TestLatestDate(t *testing.T) {
	b := validBundle(3)
	assert.Equal(t, b.Date[2], b.LatestDate())
	assert.Equal(t, 3, b.Len())
	assert.True(t, (&TimeSeriesBundle{}).LatestDate().IsZero())
}

func TestErrorMessages(t *testing.T) {
	inner := &InsufficientHistoryError{Section: "trading", Have: 1, Need: 2}
	de := &DataError{Field: "close", Reason: "too short", Err: inner}

	var ih *InsufficientHistoryError
	assert.True(t, errors.As(de, &ih))
	assert.Contains(t, de.Error(), "close")
	assert.Contains(t, (&LookupError{Symbol: "X"}).Error(), "X")
}
