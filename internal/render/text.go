package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/mmr-tortoise/zoopage/internal/model"
)

// Line is one "Label: value" entry of the text report.
type Line struct {
	Label string
	Value string
}

// String formats the line for printing.
func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Lines collects the present fields of a record in the order Name, Diet,
// Type, Location and then moves the Name line to the front.
func Lines(a model.Animal) []Line {
	var lines []Line

	add := func(label, value string) {
		if value != "" {
			lines = append(lines, Line{Label: label, Value: value})
		}
	}

	add(model.LabelName, a.Name)
	add(model.LabelDiet, a.Diet)
	add(model.LabelType, a.Type)
	add(model.LabelLocation, a.Location)

	return nameFirst(lines)
}

// nameFirst is a stable partition on a single predicate: the Name line (if
// any) comes first and every other line keeps its relative order. It is
// deliberately not a sort by field.
func nameFirst(lines []Line) []Line {
	slices.SortStableFunc(lines, func(a, b Line) int {
		return rank(a) - rank(b)
	})
	return lines
}

func rank(l Line) int {
	if l.Label == model.LabelName {
		return 0
	}
	return 1
}

// WriteText prints the report for animals to w. Records without any
// present field print nothing. A single blank line separates consecutive
// records that did print, with no trailing separator.
func WriteText(w io.Writer, animals []model.Animal) error {
	printed := false
	for _, a := range animals {
		lines := Lines(a)
		if len(lines) == 0 {
			continue
		}

		if printed {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, l := range lines {
			if _, err := fmt.Fprintln(w, l.String()); err != nil {
				return err
			}
		}
		printed = true
	}
	return nil
}

// Report extracts the records from decoded data and prints the report to
// w, returning the number of records. Non-sequence data prints nothing and
// yields model.ErrNotACollection; any other error comes from w.
func Report(w io.Writer, data any) (int, error) {
	animals, err := model.ParseCollection(data)
	if err != nil {
		return 0, err
	}
	return len(animals), WriteText(w, animals)
}
