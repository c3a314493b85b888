package loggen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
)

type closableBuffer struct {
	bytes.Buffer
}

func (self *closableBuffer) Close() error {
	return nil
}

func TestDefaultMeasurementsExport(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyMeasurementType, "hdrhistogram")
	m := NewDefaultMeasurements(props)
	for i := int64(1); i <= 100; i++ {
		m.Measure(OperationInsert, i*10)
	}
	m.ReportStatus(OperationInsert, StatusOK)
	m.ReportStatus(OperationInsert, StatusError)

	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, m.ExportMeasurements(exporter))
	require.Nil(t, exporter.Close())

	out := buf.String()
	require.True(t, strings.Contains(out, "[INSERT], Operations, 100"))
	require.True(t, strings.Contains(out, "95thPercentileLatency(us)"))
	require.True(t, strings.Contains(out, "99thPercentileLatency(us)"))
	require.True(t, strings.Contains(out, "Return=OK"))
	require.True(t, strings.Contains(out, "Return=ERROR"))
}

func TestDefaultMeasurementsHistogramType(t *testing.T) {
	props := NewProperties()
	props.Add(PropertyMeasurementType, "histogram")
	m := NewDefaultMeasurements(props)
	m.Measure(OperationGenerate, 1500)
	m.Measure(OperationGenerate, 2500)

	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, m.ExportMeasurements(exporter))
	require.Nil(t, exporter.Close())
	require.True(t, strings.Contains(buf.String(), "[GENERATE], Operations, 2"))
}

func TestJSONMeasurementExporter(t *testing.T) {
	buf := &closableBuffer{}
	exporter := NewJSONMeasurementExporter(buf)
	require.Nil(t, exporter.Write("INSERT", "Operations", int64(42)))
	require.Nil(t, exporter.Close())
	out := buf.String()
	require.True(t, strings.Contains(out, `"metric":"INSERT"`))
	require.True(t, strings.Contains(out, `"value":42`))
}

func TestJSONArrayMeasurementExporter(t *testing.T) {
	buf := &closableBuffer{}
	exporter := NewJSONArrayMeasurementExporter(buf)
	require.Nil(t, exporter.Write("INSERT", "Operations", int64(1)))
	require.Nil(t, exporter.Write("INSERT", "MaxLatency(us)", int64(2)))
	require.Nil(t, exporter.Close())
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "["))
	require.True(t, strings.HasSuffix(out, "]"))
	require.True(t, strings.Contains(out, "},{"))
}

func TestOrdinal(t *testing.T) {
	require.Equal(t, "95th", ordinal(95))
	require.Equal(t, "99th", ordinal(99))
	require.Equal(t, "1st", ordinal(1))
	require.Equal(t, "2nd", ordinal(2))
	require.Equal(t, "3rd", ordinal(3))
	require.Equal(t, "11th", ordinal(11))
	require.Equal(t, "12th", ordinal(12))
	require.Equal(t, "13th", ordinal(13))
}
