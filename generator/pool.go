package generator

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	// DefaultPoolCap bounds the number of entries materialized per field
	// category regardless of the requested row count.
	DefaultPoolCap = 10000
)

// Pool is a bounded, precomputed, read-only sequence of candidate values for
// one field category. Pools are built once before generation begins and never
// mutated afterwards, so any number of producer goroutines may read them
// without locking.
type Pool struct {
	values []string
}

func (self Pool) Len() int {
	return len(self.values)
}

func (self Pool) At(i int) string {
	return self.values[i]
}

// Offset maps a row index to a pool slot. This single closed-form formula is
// the reproducibility guarantee of the whole generator: for a given row index
// and pool length it always yields the same slot, and no nondeterministic
// random source is ever consulted on the per-row path.
func Offset(rowIndex int64, poolLen int) int {
	return int((rowIndex*7 + 13) % int64(poolLen))
}

// PoolSize returns the number of entries to materialize per category: twice
// the requested row count, capped at capLimit, and never less than one for a
// nonzero row count. A zero row count yields an empty pool.
func PoolSize(rowCount int64, capLimit int) int {
	if rowCount <= 0 {
		return 0
	}
	size := rowCount * 2
	if size > int64(capLimit) {
		return capLimit
	}
	return int(size)
}

// Pools holds every materialized value pool of the log table. All pools share
// the same length so a single offset per row addresses all of them.
type Pools struct {
	HostIDs        Pool
	HostNames      Pool
	ServiceIDs     Pool
	ServiceNames   Pool
	ContainerIDs   Pool
	ContainerNames Pool
	PodIDs         Pool
	PodNames       Pool
	ClusterIDs     Pool
	ClusterNames   Pool
	TraceIDs       Pool
	SpanIDs        Pool
	SessionIDs     Pool
	RequestIDs     Pool
	size           int
}

func (self *Pools) Size() int {
	return self.size
}

// BuildPools materializes all value pools for the given row count. Entropy
// for the identifier pools comes from a single faker instance seeded up
// front: with a nonzero seed the pool content is bit-stable across process
// runs, with seed zero it varies per run while per-run row-to-slot mapping
// stays deterministic either way.
func BuildPools(rowCount int64, capLimit int, seed int64) (*Pools, error) {
	size := PoolSize(rowCount, capLimit)
	if size == 0 {
		if rowCount > 0 {
			return nil, NewPoolBuildError("pool size is zero for row count %d", rowCount)
		}
		return &Pools{}, nil
	}
	if len(namingSuffixes) == 0 {
		return nil, NewPoolBuildError("naming suffix table is empty")
	}
	faker := gofakeit.New(uint64(seed))
	return &Pools{
		HostIDs:        buildIDPool(faker, "host", size),
		HostNames:      buildNamePool(size, 0),
		ServiceIDs:     buildIDPool(faker, "service", size),
		ServiceNames:   buildNamePool(size, 1000),
		ContainerIDs:   buildIDPool(faker, "container", size),
		ContainerNames: buildNamePool(size, 2000),
		PodIDs:         buildIDPool(faker, "pod", size),
		PodNames:       buildNamePool(size, 3000),
		ClusterIDs:     buildIDPool(faker, "cluster", size),
		ClusterNames:   buildNamePool(size, 4000),
		TraceIDs:       buildTokenPool(faker, "trace", size),
		SpanIDs:        buildTokenPool(faker, "span", size),
		SessionIDs:     buildTokenPool(faker, "session", size),
		RequestIDs:     buildTokenPool(faker, "req", size),
		size:           size,
	}, nil
}

// buildIDPool generates hierarchy identifiers such as "host-31724". The
// random component keeps ids from different categories disjoint, the index
// component keeps entries within one pool distinct.
func buildIDPool(faker *gofakeit.Faker, prefix string, size int) Pool {
	values := make([]string, size)
	for i := 0; i < size; i++ {
		values[i] = fmt.Sprintf("%s-%d", prefix, faker.Uint64()%100000+uint64(i))
	}
	return Pool{values: values}
}

// buildNamePool generates human-readable names from the fixed suffix table,
// cycled by index. The base shifts the cycle so host names and service names
// do not line up slot for slot.
func buildNamePool(size int, base int) Pool {
	values := make([]string, size)
	for i := 0; i < size; i++ {
		values[i] = NameSuffix(i + base)
	}
	return Pool{values: values}
}

// buildTokenPool generates opaque tokens such as "trace_9072345612".
func buildTokenPool(faker *gofakeit.Faker, prefix string, size int) Pool {
	values := make([]string, size)
	for i := 0; i < size; i++ {
		values[i] = fmt.Sprintf("%s_%d", prefix, faker.Uint64())
	}
	return Pool{values: values}
}

// NameSuffix builds a name like "gamma42" from the fixed naming table.
func NameSuffix(seed int) string {
	return fmt.Sprintf("%s%d", namingSuffixes[seed%len(namingSuffixes)], seed%1000)
}
