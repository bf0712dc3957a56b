package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwatch/internal/core/domain"
)

func creative(adID string, fp uint64) domain.AdCreative {
	f := domain.Fingerprint(fp)
	return domain.AdCreative{AdID: adID, Fingerprint: &f}
}

func adIDs(c Cluster) []string {
	ids := make([]string, 0, c.Size())
	for _, m := range c.Members {
		ids = append(ids, m.AdID)
	}
	return ids
}

func TestGroupComparesOnlyWithRepresentative(t *testing.T) {
	// A2 is 10 bits from A1, A3 is 15 bits from A1 but only 5 from A2.
	a1 := creative("A1", 0)
	a2 := creative("A2", 0x3ff)
	a3 := creative("A3", 0x7fff)
	require.Equal(t, 10, a1.Fingerprint.Distance(*a2.Fingerprint))
	require.Equal(t, 15, a1.Fingerprint.Distance(*a3.Fingerprint))
	require.Equal(t, 5, a2.Fingerprint.Distance(*a3.Fingerprint))

	clusters := Group([]domain.AdCreative{a1, a2, a3}, DefaultThreshold)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"A1", "A2"}, adIDs(clusters[0]))
	assert.Equal(t, []string{"A3"}, adIDs(clusters[1]))

	tiers := Categorize(clusters)
	require.Len(t, tiers.Mid, 1)
	assert.Equal(t, "A1", tiers.Mid[0].Representative.AdID)
	assert.Equal(t, 2, tiers.Mid[0].Size)
	require.Len(t, tiers.Single, 1)
	assert.Equal(t, "A3", tiers.Single[0].Representative.AdID)
	assert.Empty(t, tiers.Top)
	assert.Equal(t, Counts{Top: 0, Mid: 1, Single: 1}, tiers.Counts())
}

func TestGroupJoinsFirstQualifyingCluster(t *testing.T) {
	// C sits 12 bits from representative A and 3 bits from representative B.
	// A was created first, so C joins A.
	a := creative("A", 0)
	b := creative("B", 0x7fff<<20)
	c := creative("C", 0xfff<<20)
	require.Greater(t, a.Fingerprint.Distance(*b.Fingerprint), DefaultThreshold)
	require.Equal(t, 12, a.Fingerprint.Distance(*c.Fingerprint))
	require.Equal(t, 3, b.Fingerprint.Distance(*c.Fingerprint))

	clusters := Group([]domain.AdCreative{a, b, c}, DefaultThreshold)
	require.Len(t, clusters, 2)
	assert.Equal(t, []string{"A", "C"}, adIDs(clusters[0]))
	assert.Equal(t, []string{"B"}, adIDs(clusters[1]))
}

func TestGroupDependsOnOrder(t *testing.T) {
	a1 := creative("A1", 0)
	a2 := creative("A2", 0x3ff)
	a3 := creative("A3", 0x7fff)

	clusters := Group([]domain.AdCreative{a2, a1, a3}, DefaultThreshold)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"A2", "A1", "A3"}, adIDs(clusters[0]))
}

func TestGroupSkipsCreativesWithoutFingerprint(t *testing.T) {
	clusters := Group([]domain.AdCreative{{AdID: "bare"}, creative("A", 1)}, DefaultThreshold)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"A"}, adIDs(clusters[0]))

	assert.Empty(t, Group(nil, DefaultThreshold))
}

func TestCategorizeBoundariesAndTies(t *testing.T) {
	mk := func(id string, size int) Cluster {
		c := Cluster{}
		for i := 0; i < size; i++ {
			c.Members = append(c.Members, domain.AdCreative{AdID: id})
		}
		return c
	}
	tiers := Categorize([]Cluster{
		mk("one", 1),
		mk("four", 4),
		mk("five", 5),
		mk("two-a", 2),
		mk("seven", 7),
		mk("four-b", 4),
		mk("two-b", 2),
		mk("five-b", 5),
	})

	names := func(es []Entry) []string {
		out := []string{}
		for _, e := range es {
			out = append(out, e.Representative.AdID)
		}
		return out
	}
	assert.Equal(t, []string{"seven", "five", "five-b"}, names(tiers.Top))
	assert.Equal(t, []string{"four", "four-b", "two-a", "two-b"}, names(tiers.Mid))
	assert.Equal(t, []string{"one"}, names(tiers.Single))
}

func TestCategorizeEmpty(t *testing.T) {
	tiers := Categorize(nil)
	assert.NotNil(t, tiers.Top)
	assert.NotNil(t, tiers.Mid)
	assert.NotNil(t, tiers.Single)
	assert.Equal(t, Counts{}, tiers.Counts())
}
