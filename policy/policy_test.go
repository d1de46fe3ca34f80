package policy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDefault(t *testing.T) {
	t.Parallel()

	p := Default()
	assert.True(t, p.PerWithdrawalLimit.Equal(d("500")))
	assert.Equal(t, 3, p.DailyWithdrawalLimit)
	assert.True(t, p.FeeRate.Equal(d("0.015")))
	require.NoError(t, p.Validate())
}

func TestFeeAndTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount string
		fee    string
		total  string
	}{
		{"fifty", "50", "0.75", "50.75"},
		{"limit", "500", "7.5", "507.5"},
		{"cents", "0.01", "0.00015", "0.01015"},
	}

	p := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, p.Fee(d(tt.amount)).Equal(d(tt.fee)), "fee=%s", p.Fee(d(tt.amount)))
			assert.True(t, p.Total(d(tt.amount)).Equal(d(tt.total)), "total=%s", p.Total(d(tt.amount)))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Policy)
		errMsg string
	}{
		{"zero limit", func(p *Policy) { p.PerWithdrawalLimit = decimal.Zero }, "per-withdrawal limit"},
		{"negative limit", func(p *Policy) { p.PerWithdrawalLimit = d("-1") }, "per-withdrawal limit"},
		{"no withdrawals", func(p *Policy) { p.DailyWithdrawalLimit = 0 }, "daily withdrawal limit"},
		{"negative fee", func(p *Policy) { p.FeeRate = d("-0.01") }, "fee rate"},
		{"fee of one", func(p *Policy) { p.FeeRate = d("1") }, "fee rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Default()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	free := Default()
	free.FeeRate = decimal.Zero
	assert.NoError(t, free.Validate())
}
