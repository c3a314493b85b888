package generator

import (
	"fmt"
	"strings"
)

const (
	// MessageTargetLength is the length messages are padded towards.
	MessageTargetLength = 1500
	// MessageMinLength and MessageMaxLength bound every synthesized message.
	MessageMinLength = 1350
	MessageMaxLength = 1650
)

// pseudo derives a non-negative pseudo-random value from the row index and a
// per-placeholder salt. Each placeholder uses its own salt so substituted
// values are not trivially correlated, yet every value is a closed-form
// function of the row index.
func pseudo(rowIndex, salt int64) int64 {
	v := (rowIndex*7 + 13 + salt*104729) * 2654435761
	return v & 0x7fffffffffffffff
}

// MessageSynthesizer produces the log_message column: a level-appropriate
// template with placeholders substituted, padded with key=value detail
// segments to the target length, plus a synthetic stack trace on most ERROR
// rows. Output is fully reproducible for a given (rowIndex, level).
type MessageSynthesizer struct {
	templates map[string][]string
}

func NewMessageSynthesizer() (*MessageSynthesizer, error) {
	if len(messageTemplates) == 0 {
		return nil, NewPoolBuildError("message template table is empty")
	}
	for level, set := range messageTemplates {
		if len(set) == 0 {
			return nil, NewPoolBuildError("no message templates for level %s", level)
		}
	}
	return &MessageSynthesizer{
		templates: messageTemplates,
	}, nil
}

// Synthesize builds the message for one row. The result length always falls
// in [MessageMinLength, MessageMaxLength].
func (self *MessageSynthesizer) Synthesize(rowIndex int64, level string) string {
	set, ok := self.templates[level]
	if !ok {
		set = self.templates["INFO"]
	}
	template := set[Offset(rowIndex, len(set))]

	var b strings.Builder
	b.Grow(MessageMaxLength + 64)
	b.WriteString(substitute(template, rowIndex))

	if level == "ERROR" && hasStackTrace(rowIndex) {
		appendStackTrace(&b, rowIndex)
	}
	appendPadding(&b, rowIndex)

	msg := b.String()
	if len(msg) > MessageMaxLength {
		msg = msg[:MessageMaxLength]
	}
	return msg
}

// HasStackTrace reports whether the ERROR row at rowIndex carries a stack
// trace. The decision is a row-index-derived threshold test hitting roughly
// 70% of rows, not a coin flip, so it is stable across repeated runs.
func hasStackTrace(rowIndex int64) bool {
	return (rowIndex*7+13)%10 < 7
}

// HasStackTrace exposes the stack-trace decision for a row so callers can
// assert reproducibility without parsing the message.
func (self *MessageSynthesizer) HasStackTrace(rowIndex int64, level string) bool {
	return level == "ERROR" && hasStackTrace(rowIndex)
}

func substitute(template string, rowIndex int64) string {
	r := strings.NewReplacer(
		"{USER}", fmt.Sprintf("user_%d", 10000+pseudo(rowIndex, 1)%1000),
		"{IP}", fmt.Sprintf("192.168.%d.%d", pseudo(rowIndex, 2)%256, pseudo(rowIndex, 3)%256),
		"{TIME}", fmt.Sprintf("%d", pseudo(rowIndex, 4)%4999+1),
		"{SIZE}", sizeValue(rowIndex),
		"{COUNT}", fmt.Sprintf("%d", pseudo(rowIndex, 6)%999+1),
		"{TABLE}", tableNames[pseudo(rowIndex, 7)%int64(len(tableNames))],
		"{ID}", fmt.Sprintf("%d", pseudo(rowIndex, 8)%100000),
		"{SERVICE}", "service-"+namingSuffixes[pseudo(rowIndex, 9)%int64(len(namingSuffixes))],
		"{STATUS}", statusCodes[pseudo(rowIndex, 10)%int64(len(statusCodes))],
	)
	return r.Replace(template)
}

// sizeValue yields 1KB .. 1MB.
func sizeValue(rowIndex int64) string {
	kb := pseudo(rowIndex, 5)%1024 + 1
	if kb == 1024 {
		return "1MB"
	}
	return fmt.Sprintf("%dKB", kb)
}

// appendStackTrace writes 3 to 8 synthetic java-style frames.
func appendStackTrace(b *strings.Builder, rowIndex int64) {
	lines := 3 + int(pseudo(rowIndex, 11)%6)
	for k := 0; k < lines; k++ {
		salt := int64(12 + k)
		class := stackClasses[pseudo(rowIndex, salt)%int64(len(stackClasses))]
		method := stackMethods[pseudo(rowIndex, salt+100)%int64(len(stackMethods))]
		line := pseudo(rowIndex, salt+200)%2000 + 1
		fmt.Fprintf(b, "\n\tat com.logtable.%s.%s(%s.java:%d)", class, method, class, line)
	}
}

// appendPadding grows the message with key=value detail segments until it
// reaches the target length. Segments are short enough that the overshoot
// never exceeds the maximum length bound.
func appendPadding(b *strings.Builder, rowIndex int64) {
	if b.Len() >= MessageTargetLength {
		return
	}
	b.WriteString(" |")
	for k := 0; b.Len() < MessageTargetLength; k++ {
		word := fillerWords[(int(rowIndex)+k)%len(fillerWords)]
		fmt.Fprintf(b, " %s=%d", word, pseudo(rowIndex, int64(20+k))%10000)
	}
}
