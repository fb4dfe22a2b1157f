package period_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bugtrack-reports/internal/lib/period"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    period.Type
		wantErr bool
	}{
		{"", period.None, false},
		{"none", period.None, false},
		{"week_to_date", period.WeekToDate, false},
		{" Month_Previous ", period.MonthPrevious, false},
		{"quarter_to_date", period.QuarterToDate, false},
		{"year_previous", period.YearPrevious, false},
		{"arbitrary", period.ArbitraryDates, false},
		{"fortnight", period.None, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := period.ParseType(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, period.ErrUnknownType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestType_StringRoundTrip(t *testing.T) {
	for _, opt := range period.Options() {
		got, err := period.ParseType(opt.Name)
		require.NoError(t, err)
		assert.Equal(t, period.Type(opt.Value), got)
	}
}

func TestOptions_Order(t *testing.T) {
	opts := period.Options()

	require.Len(t, opts, 11)
	assert.Equal(t, period.Option{Value: 0, Name: "none", Label: "None"}, opts[0])
	assert.Equal(t, period.Option{Value: 10, Name: "arbitrary", Label: "Arbitrary dates"}, opts[10])
	for i, opt := range opts {
		assert.Equal(t, i, opt.Value)
	}
}

func TestType_Invalid(t *testing.T) {
	bad := period.Type(42)

	assert.False(t, bad.Valid())
	assert.Equal(t, "period(42)", bad.String())
	assert.Equal(t, "period(42)", bad.Label())
}
