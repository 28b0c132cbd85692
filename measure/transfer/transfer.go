// Package transfer formats textual transfer-function notes for enveloped
// sine components. The notes annotate the envelope demo charts; they are
// labels, not a filter model.
package transfer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sigworks/sigscope/dsp/signal"
)

// Description holds the three notes for one component.
type Description struct {
	FrequencyHz float64
	TimeDomain  string
	FreqDomain  string
	OutputInput string
}

// Describe builds the notes for d with omega = 2*pi*f. Numbers carry two
// decimals; the frequency inside sin() is printed as given.
func Describe(d signal.Descriptor) Description {
	omega := 2 * math.Pi * d.FrequencyHz
	freq := strconv.FormatFloat(d.FrequencyHz, 'f', -1, 64)
	sign := "-"
	if d.EnvelopeRate > 0 {
		sign = "+"
	}
	rate := math.Abs(d.EnvelopeRate)

	desc := Description{
		FrequencyHz: d.FrequencyHz,
		OutputInput: fmt.Sprintf("Y(s)/X(s) = %.2f / (s %s %.2f)", omega, sign, rate),
	}
	if d.EnvelopeRate == 0 {
		desc.FreqDomain = fmt.Sprintf("H(s) = %.2f / (s + %.2f)", omega, omega)
		desc.TimeDomain = fmt.Sprintf("H(t) = A sin(2π%st)", freq)
		return desc
	}
	desc.FreqDomain = fmt.Sprintf("H(s) = %.2f / (s %s %.2f)", omega, sign, rate)
	desc.TimeDomain = fmt.Sprintf("H(t) = A e^(%s%.2ft) sin(2π%st)", sign, rate, freq)
	return desc
}

// DescribeAll describes every descriptor in order.
func DescribeAll(ds []signal.Descriptor) []Description {
	out := make([]Description, len(ds))
	for i, d := range ds {
		out[i] = Describe(d)
	}
	return out
}

// Annotation renders the notes as a titled multi-line block.
func (d Description) Annotation(title string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\nTime: ")
	b.WriteString(d.TimeDomain)
	b.WriteString("\nFreq: ")
	b.WriteString(d.FreqDomain)
	b.WriteString("\nOutput/Input: ")
	b.WriteString(d.OutputInput)
	return b.String()
}
