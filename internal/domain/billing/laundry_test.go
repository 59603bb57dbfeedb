package billing

import (
	"testing"

	"github.com/edificio/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLaundryEntry(t *testing.T) {
	residentID := uuid.New()
	aug := month(t, "08_2025")

	tests := []struct {
		name       string
		residentID uuid.UUID
		month      valueobject.MonthKey
		wash       int
		dry        int
		wantErr    bool
	}{
		{"valid", residentID, aug, 2, 1, false},
		{"wash only", residentID, aug, 3, 0, false},
		{"dry only", residentID, aug, 0, 2, false},
		{"nil resident", uuid.Nil, aug, 1, 1, true},
		{"zero month", residentID, valueobject.MonthKey{}, 1, 1, true},
		{"negative wash", residentID, aug, -1, 1, true},
		{"negative dry", residentID, aug, 1, -1, true},
		{"no usage at all", residentID, aug, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewLaundryEntry(tt.residentID, tt.month, tt.wash, tt.dry)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wash, entry.Wash)
			assert.Equal(t, tt.dry, entry.Dry)
			assert.False(t, entry.LoggedAt.IsZero())
		})
	}
}

func TestCalculateLaundryUsage(t *testing.T) {
	residentID := uuid.New()
	aug := month(t, "08_2025")
	sep := month(t, "09_2025")

	entry := func(m valueobject.MonthKey, wash, dry int) LaundryEntry {
		e, err := NewLaundryEntry(residentID, m, wash, dry)
		require.NoError(t, err)
		return *e
	}

	t.Run("no entries means no usage", func(t *testing.T) {
		assert.Nil(t, CalculateLaundryUsage(nil, aug))
		assert.Nil(t, CalculateLaundryUsage([]LaundryEntry{entry(sep, 2, 1)}, aug))
	})

	t.Run("prices at fixed per-use rates", func(t *testing.T) {
		usage := CalculateLaundryUsage([]LaundryEntry{entry(aug, 4, 2)}, aug)
		require.NotNil(t, usage)
		assert.Equal(t, 4, usage.Wash)
		assert.Equal(t, 2, usage.Dry)
		assert.True(t, usage.WashTotal.Equal(dec(24)))
		assert.True(t, usage.DryTotal.Equal(dec(6)))
		assert.True(t, usage.Total.Equal(dec(30)))
	})

	t.Run("aggregates entries and skips other months", func(t *testing.T) {
		entries := []LaundryEntry{
			entry(aug, 1, 0),
			entry(aug, 2, 3),
			entry(sep, 10, 10),
		}
		usage := CalculateLaundryUsage(entries, aug)
		require.NotNil(t, usage)
		assert.Equal(t, 3, usage.Wash)
		assert.Equal(t, 3, usage.Dry)
		assert.True(t, usage.Total.Equal(dec(27)))
	})
}
