package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/the-points-must-flow/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cat := Default()

	require.Len(t, cat.Hotels, 24)
	assert.Equal(t, HotelAward{Chain: "marriott", Category: 1, Points: 7500, CashValue: 75}, cat.Hotels[0])
	assert.Equal(t, HotelAward{Chain: "hilton", Category: 8, Points: 80000, CashValue: 480}, cat.Hotels[15])
	assert.Equal(t, HotelAward{Chain: "hyatt", Category: 5, Points: 17000, CashValue: 340}, cat.Hotels[20])

	require.Len(t, cat.GiftCards, 5)
	assert.Equal(t, "amazon", cat.GiftCards[0].Merchant)
	assert.Equal(t, "uber", cat.GiftCards[4].Merchant)

	require.Len(t, cat.StatementCredits, 2)
	assert.InDelta(t, 125.0, cat.StatementCredits[0].CashValue(), 1e-9)
	assert.InDelta(t, 60.0, cat.StatementCredits[1].CashValue(), 1e-9)

	require.Len(t, cat.Transfers, 4)
	assert.Equal(t, "chase_ur_to_hyatt", cat.Transfers[0].Name)

	require.NoError(t, cat.Validate())
}

func TestDefaultReturnsFreshTables(t *testing.T) {
	a := Default()
	a.Hotels[0].Points = 1
	assert.Equal(t, 7500, Default().Hotels[0].Points)
}

func TestTransfer_Apply(t *testing.T) {
	tests := []struct {
		name     string
		transfer Transfer
		units    int
		want     int
	}{
		{"one to one", Transfer{Ratio: 1}, 15000, 15000},
		{"with bonus", Transfer{Ratio: 1, Bonus: 0.25}, 15000, 18750},
		{"fractional result floors", Transfer{Ratio: 1, Bonus: 0.25}, 3, 3},
		{"two to one", Transfer{Ratio: 0.5}, 15001, 7500},
		{"empty balance", Transfer{Ratio: 1, Bonus: 0.25}, 0, 0},
		{"negative balance", Transfer{Ratio: 1}, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transfer.Apply(tt.units))
		})
	}
}

func TestParse_OverridesSections(t *testing.T) {
	data := []byte(`
gift_cards:
  - merchant: apple
    points: 5000
    value: 45
transfers:
  - name: citi_ty_to_jetblue
    ratio: 0.8
`)

	cat, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, cat.GiftCards, 1)
	assert.Equal(t, GiftCard{Merchant: "apple", Points: 5000, Value: 45}, cat.GiftCards[0])
	require.Len(t, cat.Transfers, 1)
	assert.InDelta(t, 0.8, cat.Transfers[0].Ratio, 1e-9)

	assert.Len(t, cat.Hotels, 24, "sections missing from the file keep their defaults")
	assert.Len(t, cat.StatementCredits, 2)
}

func TestParse_EmptySectionClearsTable(t *testing.T) {
	cat, err := Parse([]byte("gift_cards: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cat.GiftCards)
	assert.Len(t, cat.Transfers, 4)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"malformed yaml", "hotels: [", "parsing"},
		{"hotel without chain", "hotels:\n  - category: 1\n    points: 100\n", "chain is required"},
		{"hotel category zero", "hotels:\n  - chain: ihg\n    points: 100\n", "category must be at least 1"},
		{"hotel without points", "hotels:\n  - chain: ihg\n    category: 2\n", "points must be positive"},
		{"negative gift card value", "gift_cards:\n  - merchant: x\n    points: 10\n    value: -1\n", "value must not be negative"},
		{"statement credit without points", "statement_credits:\n  - program: p\n    cents_per_point: 1\n", "points must be positive"},
		{"transfer without ratio", "transfers:\n  - name: t\n", "ratio must be positive"},
		{"negative bonus", "transfers:\n  - name: t\n    ratio: 1\n    bonus: -0.5\n", "bonus must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrCatalog)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
statement_credits:
  - program: capital_one_erase
    cents_per_point: 1.0
    points: 5000
`), 0o600))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, cat.StatementCredits, 1)
	assert.InDelta(t, 50.0, cat.StatementCredits[0].CashValue(), 1e-9)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCatalog)
}
