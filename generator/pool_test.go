package generator

import (
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestPoolSize(t *testing.T) {
	require.Equal(t, 0, PoolSize(0, DefaultPoolCap))
	require.Equal(t, 2, PoolSize(1, DefaultPoolCap))
	require.Equal(t, 200, PoolSize(100, DefaultPoolCap))
	require.Equal(t, DefaultPoolCap, PoolSize(5000, DefaultPoolCap))
	require.Equal(t, DefaultPoolCap, PoolSize(2000000, DefaultPoolCap))
	require.Equal(t, 50, PoolSize(2000000, 50))
}

func TestOffsetIsReproducible(t *testing.T) {
	poolLen := 997
	for i := int64(0); i < 5000; i++ {
		expected := int((i*7 + 13) % int64(poolLen))
		require.Equal(t, expected, Offset(i, poolLen))
		require.Equal(t, Offset(i, poolLen), Offset(i, poolLen))
	}
}

func TestBuildPools(t *testing.T) {
	pools, err := BuildPools(100, DefaultPoolCap, 42)
	require.Nil(t, err)
	require.Equal(t, 200, pools.Size())
	require.Equal(t, 200, pools.HostIDs.Len())
	require.Equal(t, 200, pools.HostNames.Len())
	require.Equal(t, 200, pools.TraceIDs.Len())
	require.Equal(t, 200, pools.RequestIDs.Len())
	for i := 0; i < pools.Size(); i++ {
		require.True(t, strings.HasPrefix(pools.HostIDs.At(i), "host-"))
		require.True(t, strings.HasPrefix(pools.ServiceIDs.At(i), "service-"))
		require.True(t, strings.HasPrefix(pools.TraceIDs.At(i), "trace_"))
		require.True(t, strings.HasPrefix(pools.SpanIDs.At(i), "span_"))
	}
}

func TestBuildPoolsSeededIsStable(t *testing.T) {
	first, err := BuildPools(500, DefaultPoolCap, 7)
	require.Nil(t, err)
	second, err := BuildPools(500, DefaultPoolCap, 7)
	require.Nil(t, err)
	for i := 0; i < first.Size(); i++ {
		require.Equal(t, first.HostIDs.At(i), second.HostIDs.At(i))
		require.Equal(t, first.TraceIDs.At(i), second.TraceIDs.At(i))
		require.Equal(t, first.SessionIDs.At(i), second.SessionIDs.At(i))
	}
}

func TestBuildPoolsZeroRowCount(t *testing.T) {
	pools, err := BuildPools(0, DefaultPoolCap, 1)
	require.Nil(t, err)
	require.Equal(t, 0, pools.Size())
}

func TestNameSuffixCyclesNamingTable(t *testing.T) {
	require.Equal(t, "alpha0", NameSuffix(0))
	require.Equal(t, "beta1", NameSuffix(1))
	require.Equal(t, "alpha36", NameSuffix(len(namingSuffixes)))
	require.Equal(t, "alpha0", NameSuffix(9000))
}
