package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartments_FixedOrder(t *testing.T) {
	depts := Departments()

	require.Len(t, depts, 5)
	assert.Equal(t, DepartmentTrendAnalyst, depts[0])
	assert.Equal(t, DepartmentMeanReversionSpecialist, depts[1])
	assert.Equal(t, DepartmentVolatilityScout, depts[2])
	assert.Equal(t, DepartmentFundamentalReader, depts[3])
	assert.Equal(t, DepartmentNewsSentimentReader, depts[4])
}

func TestDepartments_AllValidWithDescriptions(t *testing.T) {
	for _, d := range Departments() {
		assert.True(t, d.IsValid(), d)
		assert.NotEqual(t, unknownDescription, d.Description(), d)
	}
}

func TestParseDepartment(t *testing.T) {
	d, err := ParseDepartment("Volatility_Scout")
	require.NoError(t, err)
	assert.Equal(t, DepartmentVolatilityScout, d)

	_, err = ParseDepartment("Macro_Desk")
	assert.ErrorIs(t, err, ErrUnknownDepartment)
}

func TestParseCollection(t *testing.T) {
	c, err := ParseCollection("daily_snapshots")
	require.NoError(t, err)
	assert.Equal(t, CollectionDailySnapshots, c)
	assert.Equal(t, 4, c.Arity())

	_, err = ParseCollection("ledger")
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestCollections_Order(t *testing.T) {
	assert.Equal(t, []Collection{CollectionCentralMemory, CollectionDailySnapshots, CollectionEpisodesMeta}, Collections())
}

func TestSeedReport_Totals(t *testing.T) {
	r := &SeedReport{
		Departments: []DepartmentCounts{
			{Department: DepartmentTrendAnalyst, Collections: map[Collection]int{
				CollectionCentralMemory: 2, CollectionDailySnapshots: 7, CollectionEpisodesMeta: 5,
			}},
			{Department: DepartmentVolatilityScout, Collections: map[Collection]int{
				CollectionCentralMemory: 1,
			}},
		},
	}

	assert.Equal(t, 14, r.Departments[0].Total())
	assert.Equal(t, 15, r.Total())
}
