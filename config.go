package loggen

const (
	// Client
	// The total number of log rows to generate and ingest.
	PropertyRowCount = "rowcount"
	// The default value of `PropertyRowCount`
	PropertyRowCountDefault = "2000000"
	// The number of rows per produced batch.
	PropertyBatchSize        = "batchsize"
	PropertyBatchSizeDefault = "100000"
	// The number of concurrent producer/ingest streams.
	PropertyStreamCount        = "streams"
	PropertyStreamCountDefault = "8"
	// The cap on per-category value pool size.
	PropertyPoolCap        = "poolcap"
	PropertyPoolCapDefault = "10000"
	// Seed for pool construction. Zero draws fresh entropy per run.
	PropertySeed        = "seed"
	PropertySeedDefault = "0"
	// Epoch-millisecond origin of the timestamp column. Zero captures the
	// wall clock once at startup.
	PropertyBaseTime        = "basetime"
	PropertyBaseTimeDefault = "0"
	// The ingester class to be used.
	PropertyIngester        = "ingester"
	PropertyIngesterDefault = "basic"
	// The name of the table to ingest into.
	PropertyTableName = "table"
	// The default value of `PropertyTableName`
	PropertyTableNameDefault = "logtable"
	// Log verbosity of the client itself.
	PropertyLogLevel        = "loglevel"
	PropertyLogLevelDefault = "info"
	// Seconds between status lines while a run is in progress.
	PropertyStatusInterval        = "status.interval"
	PropertyStatusIntervalDefault = "10"

	// BasicIngester
	ConfigBasicVerbose               = "basic.verbose"
	ConfigBasicVerboseDefault        = "false"
	ConfigBasicSimulateDelay         = "basic.simulatedelay"
	ConfigBasicSimulateDelayDefault  = "0"
	ConfigBasicRandomizeDelay        = "basic.randomizedelay"
	ConfigBasicRandomizeDelayDefault = "true"

	// measurement
	PropertyMeasurementType        = "measurementtype"
	PropertyMeasurementTypeDefault = "hdrhistogram"

	// The exporter class to be used.
	PropertyExporter        = "exporter"
	PropertyExporterDefault = "TextMeasurementExporter"
	// If set to the path of a file, this file will be written instead of stdout.
	PropertyExportFile = "exportfile"

	Buckets        = "histogram.buckets"
	BucketsDefault = "1000"

	// The name of the property for deciding what percentile values to output.
	PropertyPercentiles = "hdrhistogram.percentiles"
	// The default value of `PropertyPercentiles`
	PropertyPercentilesDefault = "95,99"
	// Upper bound of trackable latency in microseconds.
	PropertyHdrHistogramMax        = "hdrhistogram.max"
	PropertyHdrHistogramMaxDefault = "60000000"
	// Significant digits of the hdrhistogram.
	PropertyHdrHistogramSig        = "hdrhistogram.sig"
	PropertyHdrHistogramSigDefault = "3"
)

// Measured operation names.
const (
	OperationGenerate  = "GENERATE"
	OperationInsert    = "INSERT"
	OperationPoolBuild = "POOL_BUILD"
)
