package generator

import (
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestSynthesizeLengthBounds(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	for _, level := range []string{"INFO", "DEBUG", "WARN", "ERROR"} {
		for i := int64(0); i < 2000; i++ {
			msg := synthesizer.Synthesize(i, level)
			require.True(t, len(msg) >= MessageMinLength,
				"level %s row %d too short: %d", level, i, len(msg))
			require.True(t, len(msg) <= MessageMaxLength,
				"level %s row %d too long: %d", level, i, len(msg))
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	for i := int64(0); i < 500; i++ {
		first := synthesizer.Synthesize(i, "ERROR")
		second := synthesizer.Synthesize(i, "ERROR")
		require.Equal(t, first, second)
	}
}

func TestSynthesizeLeavesNoPlaceholders(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	for _, level := range []string{"INFO", "DEBUG", "WARN", "ERROR"} {
		for i := int64(0); i < 200; i++ {
			msg := synthesizer.Synthesize(i, level)
			require.False(t, strings.Contains(msg, "{"),
				"unsubstituted placeholder in level %s row %d", level, i)
		}
	}
}

func TestStackTraceDecisionIsStable(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	// (0*7+13)%10 = 3 < 7 so row 0 carries a trace
	require.True(t, synthesizer.HasStackTrace(0, "ERROR"))
	// (42*7+13)%10 = 7 so row 42 does not
	require.False(t, synthesizer.HasStackTrace(42, "ERROR"))
	// only ERROR rows ever carry one
	require.False(t, synthesizer.HasStackTrace(0, "INFO"))
	require.False(t, synthesizer.HasStackTrace(0, "WARN"))
}

func TestStackTraceFrequency(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	total := int64(10000)
	withTrace := 0
	for i := int64(0); i < total; i++ {
		if synthesizer.HasStackTrace(i, "ERROR") {
			withTrace++
		}
	}
	got := float64(withTrace) / float64(total)
	require.True(t, got > 0.69 && got < 0.71,
		"stack trace frequency %f outside expected band", got)
}

func TestStackTraceFrameCount(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	for i := int64(0); i < 1000; i++ {
		if !synthesizer.HasStackTrace(i, "ERROR") {
			continue
		}
		msg := synthesizer.Synthesize(i, "ERROR")
		frames := strings.Count(msg, "\n\tat com.logtable.")
		require.True(t, frames >= 3 && frames <= 8,
			"row %d has %d stack frames", i, frames)
	}
}

func TestSynthesizeUnknownLevelFallsBack(t *testing.T) {
	synthesizer, err := NewMessageSynthesizer()
	require.Nil(t, err)
	msg := synthesizer.Synthesize(7, "TRACE")
	require.True(t, len(msg) >= MessageMinLength)
	require.True(t, len(msg) <= MessageMaxLength)
}
