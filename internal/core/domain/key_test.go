package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKey_DailySnapshot(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	key, err := EncodeKey(date, 12, 5, "market_snapshot")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-30_12_5_market_snapshot", key)
}

func TestEncodeKey_Deterministic(t *testing.T) {
	first, err := EncodeKey("2025-06-30", 12, 5, "trading_agent_decision")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := EncodeKey("2025-06-30", 12, 5, "trading_agent_decision")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEncodeKey_SingleSegment(t *testing.T) {
	key, err := EncodeKey("strategy_cases_checklist")

	require.NoError(t, err)
	assert.Equal(t, "strategy_cases_checklist", key)
}

func TestEncodeKey_SeparatorInPrefixRejected(t *testing.T) {
	_, err := EncodeKey("2025_06_30", 12, 5, "metrics")

	assert.ErrorIs(t, err, ErrSeparatorInSegment)
}

func TestEncodeKey_EmptySegmentRejected(t *testing.T) {
	_, err := EncodeKey(12, "", "metrics")

	assert.ErrorIs(t, err, ErrEmptySegment)
}

func TestEncodeKey_NoSegments(t *testing.T) {
	_, err := EncodeKey()

	assert.ErrorIs(t, err, ErrPathArity)
}

func TestEncodeKey_UnsupportedSegment(t *testing.T) {
	_, err := EncodeKey(1.5, "metrics")

	assert.ErrorIs(t, err, ErrUnsupportedSegment)
}

func TestEncodeKey_StringerSegment(t *testing.T) {
	key, err := EncodeKey(DepartmentTrendAnalyst, "x")

	// Trend_Analyst contains the separator, so it is not allowed as a prefix.
	assert.ErrorIs(t, err, ErrSeparatorInSegment)
	assert.Empty(t, key)

	key, err = EncodeKey(CollectionEpisodesMeta)
	require.NoError(t, err)
	assert.Equal(t, "episodes_meta", key)
}

func TestCollection_Key_ArityEnforced(t *testing.T) {
	_, err := CollectionEpisodesMeta.Key(NewPath(12, "metrics"))
	assert.ErrorIs(t, err, ErrPathArity)

	key, err := CollectionEpisodesMeta.Key(NewPath(12, 5, "metrics"))
	require.NoError(t, err)
	assert.Equal(t, "12_5_metrics", key)
}

func TestCollection_Key_UnknownCollection(t *testing.T) {
	_, err := Collection("ledger").Key(NewPath("x"))

	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestDecodeKey_InverseOfEncode(t *testing.T) {
	tests := []struct {
		collection Collection
		path       Path
		want       []string
	}{
		{CollectionCentralMemory, NewPath("memory_guideline"), []string{"memory_guideline"}},
		{CollectionDailySnapshots, NewPath("2025-06-30", 12, 5, "memory_update_snapshot_trade_memory_long"),
			[]string{"2025-06-30", "12", "5", "memory_update_snapshot_trade_memory_long"}},
		{CollectionEpisodesMeta, NewPath(12, 5, "memory_guideline_update_agent"),
			[]string{"12", "5", "memory_guideline_update_agent"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.collection), func(t *testing.T) {
			key, err := tt.collection.Key(tt.path)
			require.NoError(t, err)

			parts, err := DecodeKey(tt.collection, key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, parts)
		})
	}
}

func TestDecodeKey_TooFewSegments(t *testing.T) {
	_, err := DecodeKey(CollectionDailySnapshots, "12_5_metrics")

	assert.ErrorIs(t, err, ErrPathArity)
}

func TestEncodeKey_DistinctPathsDistinctKeys(t *testing.T) {
	// Paths that would collide under a naive join are rejected instead.
	a, err := EncodeKey(1, 2, "x")
	require.NoError(t, err)

	_, err = EncodeKey("1_2", "x")
	assert.ErrorIs(t, err, ErrSeparatorInSegment)

	b, err := EncodeKey(1, 22, "x")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
