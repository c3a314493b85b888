package loggen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestProperties(t *testing.T) {
	k := "key"
	v := "value"
	p := NewProperties()
	p.Add(k, v)
	x := p.Get(k)
	require.Equal(t, v, x)
	x = p.GetDefault(k, "other")
	require.Equal(t, v, x)
	k1 := "a"
	v1 := "b"
	p2 := Properties{k1: v1}
	p.Merge(p2)
	z := p.Get(k1)
	require.Equal(t, v1, z)
}

func TestLoadProperties(t *testing.T) {
	content := "rowcount: \"5000\"\nbatchsize: \"100\"\ntable: logs\n"
	path := filepath.Join(t.TempDir(), "run.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.Nil(t, err)
	p, err := LoadProperties(path)
	require.Nil(t, err)
	require.Equal(t, "5000", p.Get(PropertyRowCount))
	require.Equal(t, "100", p.Get(PropertyBatchSize))
	require.Equal(t, "logs", p.Get(PropertyTableName))
}

func TestLoadPropertiesMissingFile(t *testing.T) {
	_, err := LoadProperties(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NotNil(t, err)
}

func TestNSToDuration(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Second)
	diff := later.Sub(now)
	require.Equal(t, SecondToNanosecond(1), int64(time.Duration(diff)))
}

func TestToTime(t *testing.T) {
	millisecond := int64(12345)
	nanosecond := MillisecondToNanosecond(millisecond)
	require.Equal(t, millisecond*1000*1000, nanosecond)
	second := MillisecondToSecond(millisecond)
	require.Equal(t, millisecond/1000, second)
	v := SecondToNanosecond(second)
	require.Equal(t, second*1000*1000*1000, v)
	v = NanosecondToMicrosecond(nanosecond)
	require.Equal(t, nanosecond/1000, v)
	v = NanosecondToMillisecond(nanosecond)
	require.Equal(t, nanosecond/1000/1000, v)
}
