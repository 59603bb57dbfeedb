package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		input   string
		month   int
		year    int
		wantErr bool
	}{
		{"07_2025", 7, 2025, false},
		{"12_2024", 12, 2024, false},
		{"01_2026", 1, 2026, false},
		{"7_2025", 7, 2025, false},
		{"2025", 0, 0, true},
		{"07_2025_01", 0, 0, true},
		{"ab_2025", 0, 0, true},
		{"07_cd", 0, 0, true},
		{"13_2025", 0, 0, true},
		{"00_2025", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseMonthKey(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.month, k.Month())
			assert.Equal(t, tt.year, k.Year())
		})
	}
}

func TestMonthKey_String(t *testing.T) {
	k, err := NewMonthKey(7, 2025)
	require.NoError(t, err)
	assert.Equal(t, "07_2025", k.String())

	k, err = NewMonthKey(11, 2026)
	require.NoError(t, err)
	assert.Equal(t, "11_2026", k.String())
}

func TestMonthKey_Before(t *testing.T) {
	earlier, _ := NewMonthKey(6, 2025)
	later, _ := NewMonthKey(7, 2025)
	nextYear, _ := NewMonthKey(1, 2026)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.True(t, later.Before(nextYear))
	assert.False(t, later.Before(later))
}

func TestMonthKey_Next(t *testing.T) {
	k, _ := NewMonthKey(12, 2025)
	assert.Equal(t, "01_2026", k.Next().String())

	k, _ = NewMonthKey(7, 2025)
	assert.Equal(t, "08_2025", k.Next().String())
}

func TestMonthKey_Eligible(t *testing.T) {
	tests := []struct {
		key      string
		eligible bool
	}{
		{"06_2025", false},
		{"12_2024", false},
		{"01_2020", false},
		{"07_2025", true},
		{"08_2025", true},
		{"01_2026", true},
		{"12_2030", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			k, err := ParseMonthKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.eligible, k.Eligible())
		})
	}
}

func TestIsEligibleKey_Malformed(t *testing.T) {
	assert.False(t, IsEligibleKey("garbage"))
	assert.False(t, IsEligibleKey("07-2025"))
	assert.False(t, IsEligibleKey(""))
	assert.True(t, IsEligibleKey("07_2025"))
}

func TestMonthKey_JSONRoundTrip(t *testing.T) {
	k, _ := NewMonthKey(8, 2025)
	data, err := json.Marshal(k)
	require.NoError(t, err)
	assert.Equal(t, `"08_2025"`, string(data))

	var decoded MonthKey
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, k.Equal(decoded))

	assert.Error(t, json.Unmarshal([]byte(`"bad_key"`), &decoded))
}
