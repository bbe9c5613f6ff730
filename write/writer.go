package write

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

type WriteSettings struct {
	DisplayWriters []Writer // Where should the display be written. This can be set to nil to avoid all display

	// DisplayInterval is the minimum time between two rows printed by a
	// Displayer. Loggers write every iteration regardless.
	DisplayInterval time.Duration
}

// DefaultWriteSettings returns settings that write nothing
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{
		DisplayInterval: defaultValueInterval,
	}
}

// DebugWriteSettings returns settings that print every iteration to stdout
func DebugWriteSettings() *WriteSettings {
	return &WriteSettings{
		DisplayWriters: []Writer{{os.Stdout, Displayer}},
	}
}

type Type int

const (
	// Logger is a writer intended to save details of the optimization run
	// for future postprocessing. The data is saved as a csv and data is printed
	// every major interation of the optimizer
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the optimization
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const defaultValueInterval = 500 * time.Millisecond

// Display writes the values of its DataAdders to a set of writers. Displayers
// print aligned rows at most once per DisplayInterval, Loggers get a csv row
// every iteration.
// Assumption is that headings don't change
type Display struct {
	displayValues []*Value

	headings []string
	values   []string
	widths   []int

	rowsSinceHeading int
	lastValueDisplay time.Time
	interval         time.Duration

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = nil
	d.existsDisplayer = false
	d.existsLogger = false
	if w == nil || len(w.DisplayWriters) == 0 {
		return nil
	}
	d.writers = w.DisplayWriters
	d.interval = w.DisplayInterval

	// headings and values are displayed on the first iteration
	d.rowsSinceHeading = headingInterval
	d.lastValueDisplay = time.Time{}

	d.accumulateValues()
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		if _, err := io.WriteString(w, "Beginning Optimization\n\n"); err != nil {
			return err
		}
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeCSV(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed by display at every iteration
// of the algorithm, as set by the values in the Writers and dataAdders which
// were set during initialization
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}

	var displayValues, displayHeadings bool
	if d.existsDisplayer && time.Since(d.lastValueDisplay) >= d.interval {
		displayValues = true
		d.lastValueDisplay = time.Now()
		if d.rowsSinceHeading >= headingInterval {
			displayHeadings = true
			d.rowsSinceHeading = 0
		}
		d.rowsSinceHeading++
	}

	if !d.existsLogger && !displayValues {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}
	if displayValues {
		d.widths = d.widths[:0]
		for i, v := range d.values {
			width := len(v)
			if len(d.headings[i]) > width {
				width = len(d.headings[i])
			}
			d.widths = append(d.widths, width)
		}
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			if err := writeCSV(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.widths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.widths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeAlignedStrings(w io.Writer, strs []string, widths []int) error {
	var sb strings.Builder
	for i, str := range strs {
		sb.WriteString(str)
		sb.WriteString(strings.Repeat(" ", widths[i]-len(str)))
		sb.WriteString("\t")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCSV(w io.Writer, record []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func valueToString(v interface{}) string {
	switch t := v.(type) {
	case int:
		return fmt.Sprintf("%d", t)
	case float64:
		return fmt.Sprintf("%e", t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
