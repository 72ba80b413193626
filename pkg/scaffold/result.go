package scaffold

import (
	"fmt"
	"io"
	"time"
)

// Mode is how a file was produced.
type Mode string

const (
	// ModeRendered files were parsed and rendered.
	ModeRendered Mode = "rendered"
	// ModeVerbatim files matched a verbatim glob and were copied.
	ModeVerbatim Mode = "verbatim"
	// ModeBinary files looked binary and were copied.
	ModeBinary Mode = "binary"
)

// FileRecord describes one produced file.
type FileRecord struct {
	// Source is the slash-separated path relative to the input directory.
	Source string `json:"source"`

	// Destination is the slash-separated path relative to the output directory.
	Destination string `json:"destination"`

	Mode Mode `json:"mode"`

	// NameFallback is set when the destination name failed to render and
	// the literal source path was used.
	NameFallback bool `json:"name_fallback,omitempty"`

	// Bytes is the size of the written file.
	Bytes int64 `json:"bytes"`
}

// Result summarizes a directory render.
type Result struct {
	RunID     string        `json:"run_id"`
	Input     string        `json:"input"`
	Output    string        `json:"output"`
	Files     []FileRecord  `json:"files"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Fallbacks returns the number of files whose name was kept literally.
func (r *Result) Fallbacks() int {
	n := 0
	for _, f := range r.Files {
		if f.NameFallback {
			n++
		}
	}
	return n
}

// Count returns the number of files produced in mode.
func (r *Result) Count(mode Mode) int {
	n := 0
	for _, f := range r.Files {
		if f.Mode == mode {
			n++
		}
	}
	return n
}

// WriteText writes a human-readable summary.
func (r *Result) WriteText(w io.Writer) error {
	for _, f := range r.Files {
		marker := ""
		if f.NameFallback {
			marker = " (literal name)"
		}
		if _, err := fmt.Fprintf(w, "  %-8s %s%s\n", f.Mode, f.Destination, marker); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Rendered %d files into %s in %s (%d rendered, %d verbatim, %d binary)\n",
		len(r.Files), r.Output, r.Duration.Round(time.Millisecond),
		r.Count(ModeRendered), r.Count(ModeVerbatim), r.Count(ModeBinary))
	return err
}
