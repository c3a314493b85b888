package generator

import (
	"time"
)

// ColumnType enumerates the column types of the log table schema.
type ColumnType uint8

const (
	TypeTimestampMillisecond ColumnType = 1 + iota
	TypeString
	TypeInt64
)

func (self ColumnType) String() string {
	switch self {
	case TypeTimestampMillisecond:
		return "TIMESTAMP_MS"
	case TypeString:
		return "STRING"
	case TypeInt64:
		return "BIGINT"
	default:
		return "UNKNOWN_TYPE"
	}
}

// Column is one typed column of the fixed schema.
type Column struct {
	Name string
	Type ColumnType
}

// logTableColumns is the fixed 22-column layout, defined once and immutable
// for the generator's lifetime. The order is part of the wire contract.
var logTableColumns = []Column{
	{Name: "ts", Type: TypeTimestampMillisecond},
	{Name: "log_uid", Type: TypeString},
	{Name: "log_message", Type: TypeString},
	{Name: "log_level", Type: TypeString},
	{Name: "host_id", Type: TypeString},
	{Name: "host_name", Type: TypeString},
	{Name: "service_id", Type: TypeString},
	{Name: "service_name", Type: TypeString},
	{Name: "container_id", Type: TypeString},
	{Name: "container_name", Type: TypeString},
	{Name: "pod_id", Type: TypeString},
	{Name: "pod_name", Type: TypeString},
	{Name: "cluster_id", Type: TypeString},
	{Name: "cluster_name", Type: TypeString},
	{Name: "trace_id", Type: TypeString},
	{Name: "span_id", Type: TypeString},
	{Name: "user_id", Type: TypeString},
	{Name: "session_id", Type: TypeString},
	{Name: "request_id", Type: TypeString},
	{Name: "response_time_ms", Type: TypeInt64},
	{Name: "log_source", Type: TypeString},
	{Name: "version", Type: TypeString},
}

// LogTableColumns returns the fixed schema. Callers must treat the returned
// slice as read-only.
func LogTableColumns() []Column {
	return logTableColumns
}

// Row is one generated log record. String fields are views into the shared
// pools where possible rather than per-row copies; the pools strictly outlive
// any batch, so the aliasing is safe.
type Row struct {
	Ts             int64
	LogUID         string
	LogMessage     string
	LogLevel       string
	HostID         string
	HostName       string
	ServiceID      string
	ServiceName    string
	ContainerID    string
	ContainerName  string
	PodID          string
	PodName        string
	ClusterID      string
	ClusterName    string
	TraceID        string
	SpanID         string
	UserID         string
	SessionID      string
	RequestID      string
	ResponseTimeMs int64
	LogSource      string
	Version        string
}

// Values returns the row cells in schema column order, ready to hand to a
// positional sink such as a SQL statement.
func (self *Row) Values() []interface{} {
	return []interface{}{
		self.Ts,
		self.LogUID,
		self.LogMessage,
		self.LogLevel,
		self.HostID,
		self.HostName,
		self.ServiceID,
		self.ServiceName,
		self.ContainerID,
		self.ContainerName,
		self.PodID,
		self.PodName,
		self.ClusterID,
		self.ClusterName,
		self.TraceID,
		self.SpanID,
		self.UserID,
		self.SessionID,
		self.RequestID,
		self.ResponseTimeMs,
		self.LogSource,
		self.Version,
	}
}

// Batch is an ordered run of generated rows. The producer owns it only until
// it is returned; ownership then transfers to the caller.
type Batch []Row

// Config carries the pure generation parameters. No I/O is implied by any of
// them.
type Config struct {
	// Table is the target table name.
	Table string
	// RowCount is the total number of rows of the run. Must be positive.
	RowCount int64
	// BatchSize is the number of rows per produced batch. Must be positive.
	BatchSize int64
	// PoolCap bounds the per-category pool size. Zero selects DefaultPoolCap.
	PoolCap int
	// Seed feeds pool construction. Zero draws per-run entropy: pool content
	// then varies between runs while per-run determinism is unaffected.
	Seed int64
	// BaseTime is the epoch-millisecond origin of the timestamp column.
	// Zero captures the wall clock once at construction.
	BaseTime int64
}

// LogTable is the row batch producer. Everything it holds after construction
// is immutable, so a single LogTable is safely shared by concurrent streams,
// each covering a disjoint row-index range.
type LogTable struct {
	table             string
	rowCount          int64
	batchSize         int64
	baseTime          int64
	pools             *Pools
	levels            *WeightedTable
	synthesizer       *MessageSynthesizer
	poolBuildDuration time.Duration
}

// NewLogTable validates the configuration and front-loads all randomness into
// pool construction. It either succeeds fully or fails with a specific reason
// before any batch can be produced.
func NewLogTable(config Config) (*LogTable, error) {
	if config.RowCount <= 0 {
		return nil, NewConfigurationError("row count must be positive, got %d", config.RowCount)
	}
	if config.BatchSize <= 0 {
		return nil, NewConfigurationError("batch size must be positive, got %d", config.BatchSize)
	}
	capLimit := config.PoolCap
	if capLimit == 0 {
		capLimit = DefaultPoolCap
	}
	if capLimit < 0 {
		return nil, NewConfigurationError("pool cap must not be negative, got %d", capLimit)
	}
	baseTime := config.BaseTime
	if baseTime == 0 {
		baseTime = time.Now().UnixNano() / int64(time.Millisecond)
	}
	levels, err := NewLogLevelTable()
	if err != nil {
		return nil, err
	}
	synthesizer, err := NewMessageSynthesizer()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	pools, err := BuildPools(config.RowCount, capLimit, config.Seed)
	if err != nil {
		return nil, err
	}
	return &LogTable{
		table:             config.Table,
		rowCount:          config.RowCount,
		batchSize:         config.BatchSize,
		baseTime:          baseTime,
		pools:             pools,
		levels:            levels,
		synthesizer:       synthesizer,
		poolBuildDuration: time.Since(start),
	}, nil
}

func (self *LogTable) Table() string {
	return self.table
}

func (self *LogTable) RowCount() int64 {
	return self.rowCount
}

func (self *LogTable) BatchSize() int64 {
	return self.batchSize
}

func (self *LogTable) BaseTime() int64 {
	return self.baseTime
}

func (self *LogTable) Pools() *Pools {
	return self.pools
}

// PoolBuildDuration reports how long pool materialization took, for the
// benchmark report.
func (self *LogTable) PoolBuildDuration() time.Duration {
	return self.poolBuildDuration
}

// RowAt generates the row for one index. Identical indexes always yield
// identical rows for a given configuration.
func (self *LogTable) RowAt(rowIndex int64) Row {
	level := self.levels.Pick(rowIndex)
	hostID, hostName := PairAt(self.pools.HostIDs, self.pools.HostNames, rowIndex)
	serviceID, serviceName := PairAt(self.pools.ServiceIDs, self.pools.ServiceNames, rowIndex)
	containerID, containerName := PairAt(self.pools.ContainerIDs, self.pools.ContainerNames, rowIndex)
	podID, podName := PairAt(self.pools.PodIDs, self.pools.PodNames, rowIndex)
	clusterID, clusterName := PairAt(self.pools.ClusterIDs, self.pools.ClusterNames, rowIndex)
	off := Offset(rowIndex, self.pools.Size())
	return Row{
		Ts:             Timestamp(self.baseTime, rowIndex),
		LogUID:         LogUID(self.baseTime, rowIndex),
		LogMessage:     self.synthesizer.Synthesize(rowIndex, level),
		LogLevel:       level,
		HostID:         hostID,
		HostName:       hostName,
		ServiceID:      serviceID,
		ServiceName:    serviceName,
		ContainerID:    containerID,
		ContainerName:  containerName,
		PodID:          podID,
		PodName:        podName,
		ClusterID:      clusterID,
		ClusterName:    clusterName,
		TraceID:        self.pools.TraceIDs.At(off),
		SpanID:         self.pools.SpanIDs.At(off),
		UserID:         UserID(rowIndex),
		SessionID:      self.pools.SessionIDs.At(off),
		RequestID:      self.pools.RequestIDs.At(off),
		ResponseTimeMs: ResponseTimeMs(rowIndex),
		LogSource:      LogSource,
		Version:        Version,
	}
}

// ProduceBatch generates rows for [startIndex, startIndex+count), clamped to
// the configured row count. The batch buffer is pre-sized so assembly never
// reallocates. Returns nil when the range is exhausted.
func (self *LogTable) ProduceBatch(startIndex, count int64) Batch {
	if startIndex >= self.rowCount {
		return nil
	}
	end := startIndex + count
	if end > self.rowCount {
		end = self.rowCount
	}
	if end <= startIndex {
		return nil
	}
	batch := make(Batch, 0, end-startIndex)
	for i := startIndex; i < end; i++ {
		batch = append(batch, self.RowAt(i))
	}
	return batch
}

// Rows returns a stream over the table's whole index range.
func (self *LogTable) Rows() *RowStream {
	return self.Stream(0, self.rowCount)
}

// Stream returns a cursor over [start, start+count) producing batches of the
// configured batch size. Concurrent producers each take a disjoint range so
// no row is duplicated or missed across streams.
func (self *LogTable) Stream(start, count int64) *RowStream {
	end := start + count
	if end > self.rowCount {
		end = self.rowCount
	}
	return &RowStream{
		table: self,
		next:  start,
		end:   end,
	}
}

// RowStream is a single producer's cursor. Within one stream the row index
// advances strictly monotonically, which preserves the generally increasing
// timestamp trend.
type RowStream struct {
	table *LogTable
	next  int64
	end   int64
}

// NextBatch produces the next batch, shorter than the batch size on the final
// call, and nil once the range is exhausted.
func (self *RowStream) NextBatch() Batch {
	if self.next >= self.end {
		return nil
	}
	count := self.table.batchSize
	if remaining := self.end - self.next; remaining < count {
		count = remaining
	}
	batch := self.table.ProduceBatch(self.next, count)
	self.next += int64(len(batch))
	return batch
}

// Remaining reports how many rows the stream has yet to produce.
func (self *RowStream) Remaining() int64 {
	if self.next >= self.end {
		return 0
	}
	return self.end - self.next
}
