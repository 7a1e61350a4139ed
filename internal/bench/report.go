package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport prints the summary as a two-column table.
func WriteReport(w io.Writer, title string, r *Report) error {
	p := message.NewPrinter(language.English)
	s := r.Summary

	keys := []string{"Games", "Mean depth", "Std dev", "Median depth", "P90 depth", "Max depth",
		"Mean stage", "Clear rate", "Crushed", "Air out", "Ended on clear", "Timed out", "Frames", "Elapsed", "Frames/sec"}
	vals := map[string]string{
		"Games":          p.Sprintf("%d", s.Games),
		"Mean depth":     p.Sprintf("%.2f", s.MeanDepth),
		"Std dev":        p.Sprintf("%.2f", s.StdDepth),
		"Median depth":   p.Sprintf("%.1f", s.MedianDepth),
		"P90 depth":      p.Sprintf("%.1f", s.P90Depth),
		"Max depth":      p.Sprintf("%d", s.MaxDepth),
		"Mean stage":     p.Sprintf("%.2f", s.MeanStage),
		"Clear rate":     p.Sprintf("%.1f %%", 100*s.ClearRate),
		"Crushed":        p.Sprintf("%d", s.Crushed),
		"Air out":        p.Sprintf("%d", s.AirOut),
		"Ended on clear": p.Sprintf("%d", s.EndedCleared),
		"Timed out":      p.Sprintf("%d", s.TimedOut),
		"Frames":         p.Sprintf("%d", s.TotalFrames),
		"Elapsed":        r.Elapsed.Round(time.Millisecond).String(),
		"Frames/sec":     p.Sprintf("%d", framesPerSecond(s.TotalFrames, r.Elapsed.Seconds())),
	}

	_, err := io.WriteString(w, formatTable(title, keys, vals))
	return err
}

func framesPerSecond(frames int, sec float64) int {
	if sec <= 0 {
		sec = 1e-9
	}
	return int(float64(frames) / sec)
}

func formatTable(title string, keys []string, vals map[string]string) string {
	keyW, valW := 0, 0
	for _, k := range keys {
		keyW = max(keyW, runewidth.StringWidth(k))
		valW = max(valW, runewidth.StringWidth(vals[k]))
	}
	keyW += 2
	valW += 2
	if inner := keyW + valW + 1; inner < runewidth.StringWidth(title)+2 {
		valW += runewidth.StringWidth(title) + 2 - inner
	}

	var b strings.Builder
	top := "+" + strings.Repeat("-", keyW+1+valW) + "+\n"
	divider := "+" + strings.Repeat("-", keyW) + "+" + strings.Repeat("-", valW) + "+\n"

	inner := keyW + valW + 1
	left := (inner - runewidth.StringWidth(title)) / 2
	right := inner - runewidth.StringWidth(title) - left

	b.WriteString(top)
	fmt.Fprintf(&b, "|%s%s%s|\n", blank(left), title, blank(right))
	b.WriteString(divider)
	for _, k := range keys {
		v := vals[k]
		fmt.Fprintf(&b, "| %s%s | %s%s |\n",
			k, blank(keyW-2-runewidth.StringWidth(k)),
			v, blank(valW-2-runewidth.StringWidth(v)))
	}
	b.WriteString(divider)
	return b.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
