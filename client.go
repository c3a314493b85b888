package loggen

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	strftime "github.com/hhkbp2/go-strftime"
	g "github.com/tsbench/loggen/generator"
)

type Client interface {
	Main()
}

// Runner executes the ingestion benchmark: it builds the shared row producer,
// splits the row index range into disjoint per-stream slices and drives one
// ingester instance per stream, measuring generation and insertion latency
// separately.
type Runner struct {
	args      *Arguments
	doneRows  int64
	startTime time.Time
}

func NewRunner(args *Arguments) *Runner {
	return &Runner{
		args: args,
	}
}

func (self *Runner) Main() {
	props := self.args.Properties
	SetLogLevel(props.GetDefault(PropertyLogLevel, PropertyLogLevelDefault))
	SetMeasurementProperties(props)

	rowCount := parseIntProperty(props, PropertyRowCount, PropertyRowCountDefault)
	batchSize := parseIntProperty(props, PropertyBatchSize, PropertyBatchSizeDefault)
	streamCount := parseIntProperty(props, PropertyStreamCount, PropertyStreamCountDefault)
	poolCap := parseIntProperty(props, PropertyPoolCap, PropertyPoolCapDefault)
	seed := parseIntProperty(props, PropertySeed, PropertySeedDefault)
	baseTime := parseIntProperty(props, PropertyBaseTime, PropertyBaseTimeDefault)
	tableName := props.GetDefault(PropertyTableName, PropertyTableNameDefault)
	if streamCount <= 0 {
		ExitOnError("stream count must be positive, got %d", streamCount)
	}

	runID := uuid.New().String()
	Infof("run %s: table=%s rows=%d batch=%d streams=%d",
		runID, tableName, rowCount, batchSize, streamCount)

	table, err := g.NewLogTable(g.Config{
		Table:     tableName,
		RowCount:  rowCount,
		BatchSize: batchSize,
		PoolCap:   int(poolCap),
		Seed:      seed,
		BaseTime:  baseTime,
	})
	if err != nil {
		ExitOnError("fail to build row producer, error: %s", err)
	}
	measurements := GetMeasurements()
	measurements.Measure(OperationPoolBuild,
		NanosecondToMicrosecond(table.PoolBuildDuration().Nanoseconds()))
	Infof("value pools ready: size=%d build=%s",
		table.Pools().Size(), table.PoolBuildDuration())

	ingesterName := props.GetDefault(PropertyIngester, PropertyIngesterDefault)
	ingesters := make([]Ingester, 0, streamCount)
	for i := int64(0); i < streamCount; i++ {
		ingester, err := NewIngester(ingesterName, props)
		if err != nil {
			ExitOnError("fail to create ingester, error: %s", err)
		}
		if err = ingester.Init(); err != nil {
			ExitOnError("fail to init ingester, error: %s", err)
		}
		ingesters = append(ingesters, ingester)
	}

	stopStatus := make(chan struct{})
	var statusDone sync.WaitGroup
	if _, ok := self.args.Options["s"]; ok {
		statusDone.Add(1)
		go self.reportStatus(rowCount, stopStatus, &statusDone)
	}

	self.startTime = time.Now()
	var wg sync.WaitGroup
	for i := int64(0); i < streamCount; i++ {
		start, count := streamSlice(rowCount, streamCount, i)
		wg.Add(1)
		go func(stream *g.RowStream, ingester Ingester) {
			defer wg.Done()
			self.runStream(tableName, stream, ingester)
		}(table.Stream(start, count), ingesters[i])
	}
	wg.Wait()
	close(stopStatus)
	statusDone.Wait()

	for _, ingester := range ingesters {
		if err := ingester.Cleanup(); err != nil {
			Errorf("fail to cleanup ingester, error: %s", err)
		}
	}

	elapsed := time.Since(self.startTime)
	done := atomic.LoadInt64(&self.doneRows)
	throughput := float64(done) / elapsed.Seconds()
	Println("run %s finished: %d rows in %s (%.0f rows/sec)",
		runID, done, elapsed, throughput)

	if err := self.exportMeasurements(props, done, elapsed); err != nil {
		ExitOnError("could not export measurements, error: %s", err)
	}
}

// runStream drains one disjoint row range, timing generation and insertion
// of every batch independently.
func (self *Runner) runStream(tableName string, stream *g.RowStream, ingester Ingester) {
	measurements := GetMeasurements()
	for {
		generateStart := time.Now()
		batch := stream.NextBatch()
		if batch == nil {
			return
		}
		measurements.Measure(OperationGenerate,
			NanosecondToMicrosecond(time.Since(generateStart).Nanoseconds()))

		insertStart := time.Now()
		n, status := ingester.WriteBatch(tableName, batch)
		measurements.Measure(OperationInsert,
			NanosecondToMicrosecond(time.Since(insertStart).Nanoseconds()))
		measurements.ReportStatus(OperationInsert, status)
		if status != StatusOK {
			Warnf("batch rejected with status %s", status)
			continue
		}
		atomic.AddInt64(&self.doneRows, n)
	}
}

func (self *Runner) reportStatus(totalRows int64, stop chan struct{}, done *sync.WaitGroup) {
	defer done.Done()
	props := self.args.Properties
	interval := parseIntProperty(props, PropertyStatusInterval, PropertyStatusIntervalDefault)
	if interval <= 0 {
		interval = 10
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			doneRows := atomic.LoadInt64(&self.doneRows)
			EPrintf("%s %d/%d rows %s",
				strftime.Format("%Y-%m-%d %H:%M:%S", now),
				doneRows, totalRows, GetMeasurements().GetSummary())
		}
	}
}

func (self *Runner) exportMeasurements(props Properties, doneRows int64, elapsed time.Duration) error {
	var w io.WriteCloser
	exportFile := props.Get(PropertyExportFile)
	if len(exportFile) == 0 {
		w = os.Stdout
	} else {
		f, err := os.Create(exportFile)
		if err != nil {
			return err
		}
		w = f
	}
	exporterName := props.GetDefault(PropertyExporter, PropertyExporterDefault)
	exporter, err := NewMeasurementExporter(exporterName, w)
	if err != nil {
		return err
	}
	if err = exporter.Write("OVERALL", "RunTime(ms)", elapsed.Milliseconds()); err != nil {
		return err
	}
	if err = exporter.Write("OVERALL", "Rows", doneRows); err != nil {
		return err
	}
	if err = exporter.Write("OVERALL", "Throughput(rows/sec)",
		float64(doneRows)/elapsed.Seconds()); err != nil {
		return err
	}
	if err = GetMeasurements().ExportMeasurements(exporter); err != nil {
		return err
	}
	return exporter.Close()
}

// streamSlice splits [0, rowCount) into streamCount disjoint contiguous
// slices, spreading the remainder over the leading streams. Every row
// belongs to exactly one slice.
func streamSlice(rowCount, streamCount, index int64) (start, count int64) {
	base := rowCount / streamCount
	remainder := rowCount % streamCount
	count = base
	if index < remainder {
		count++
		start = index * count
	} else {
		start = remainder*(base+1) + (index-remainder)*base
	}
	return start, count
}

func parseIntProperty(props Properties, key, defaultValue string) int64 {
	propStr := props.GetDefault(key, defaultValue)
	v, err := strconv.ParseInt(propStr, 0, 64)
	if err != nil {
		ExitOnError("invalid value for property %s: %s", key, propStr)
	}
	return v
}

// Shell is an interactive inspector for the row producer. It generates rows
// on demand without touching any ingester, which is handy to eyeball what a
// configuration would actually feed the store.
type Shell struct {
	args *Arguments
}

func NewShell(args *Arguments) *Shell {
	return &Shell{
		args: args,
	}
}

var (
	regexCmd *regexp.Regexp
)

func init() {
	regexCmd = regexp.MustCompile(`\s+`)
}

func (self *Shell) Main() {
	Println("loggen Command Line Client")
	Println(`Type "help" for command line help`)

	props := self.args.Properties
	table, err := g.NewLogTable(g.Config{
		Table:     props.GetDefault(PropertyTableName, PropertyTableNameDefault),
		RowCount:  parseIntProperty(props, PropertyRowCount, PropertyRowCountDefault),
		BatchSize: parseIntProperty(props, PropertyBatchSize, PropertyBatchSizeDefault),
		PoolCap:   int(parseIntProperty(props, PropertyPoolCap, PropertyPoolCapDefault)),
		Seed:      parseIntProperty(props, PropertySeed, PropertySeedDefault),
		BaseTime:  parseIntProperty(props, PropertyBaseTime, PropertyBaseTimeDefault),
	})
	if err != nil {
		ExitOnError("fail to build row producer, error: %s", err)
	}

	Println("Ready. %d rows available.", table.RowCount())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		PromptPrintf("> ")
		if !scanner.Scan() {
			break
		}
		startTime := time.Now().UnixNano()
		line := scanner.Text()
		switch line {
		case "":
			continue
		case "help":
			self.help()
			continue
		case "quit":
			return
		case "table":
			Println(`Using table "%s"`, table.Table())
		case "pools":
			Println("pool size: %d", table.Pools().Size())
			Println("host_id[0]=%s host_name[0]=%s",
				table.Pools().HostIDs.At(0), table.Pools().HostNames.At(0))
			Println("service_id[0]=%s service_name[0]=%s",
				table.Pools().ServiceIDs.At(0), table.Pools().ServiceNames.At(0))
		case "schema":
			for _, column := range g.LogTableColumns() {
				Println("%-20s %s", column.Name, column.Type)
			}
		default:
			parts := regexCmd.Split(line, -1)
			length := len(parts)
			switch parts[0] {
			case "row":
				if length != 2 {
					Println(`Error: syntax is "row index"`)
					break
				}
				index, err := strconv.ParseInt(parts[1], 0, 64)
				if err != nil || index < 0 || index >= table.RowCount() {
					Println("invalid row index: %s", parts[1])
					break
				}
				self.printRow(table.RowAt(index))
			case "batch":
				if length != 3 {
					Println(`Error: syntax is "batch start count"`)
					break
				}
				start, err := strconv.ParseInt(parts[1], 0, 64)
				if err != nil || start < 0 {
					Println("invalid start index: %s", parts[1])
					break
				}
				count, err := strconv.ParseInt(parts[2], 0, 64)
				if err != nil || count <= 0 {
					Println("invalid count: %s", parts[2])
					break
				}
				batch := table.ProduceBatch(start, count)
				if batch == nil {
					Println("0 rows")
					break
				}
				for i := range batch {
					Println("--------------------------------")
					self.printRow(batch[i])
				}
			default:
				Println(`Error: unknown command "%s"`, parts[0])
			}
		}
		Println("%d us", (time.Now().UnixNano()-startTime)/1000)
	}
}

func (self *Shell) printRow(row g.Row) {
	columns := g.LogTableColumns()
	for i, v := range row.Values() {
		if columns[i].Name == "log_message" {
			message := v.(string)
			if len(message) > 120 {
				message = message[:120] + "..."
			}
			Println("%s=%s (%d chars)", columns[i].Name, message, len(row.LogMessage))
			continue
		}
		Println("%s=%v", columns[i].Name, v)
	}
}

func (self *Shell) help() {
	helpFormat := `Commands
  row index         - Generate and print the record at a row index
  batch start count - Generate and print a run of records
  pools             - Show value pool stats
  schema            - Show the table schema
  table             - Show the target table name
  quit - Quit`
	Println(helpFormat)
}
