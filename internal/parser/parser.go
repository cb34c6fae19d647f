// Package parser turns "parent, child[, child...]" records into tree insertions.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"offspring.dev/offspring/internal/engine"
	offspringerrors "offspring.dev/offspring/internal/errors"
)

// maxLineSize bounds a single record line
const maxLineSize = 1024 * 1024

// Record is one parent followed by zero or more children
type Record struct {
	Line     int
	Parent   string
	Children []string
}

// Relation is a single (parent, child) pair
type Relation struct {
	Parent string
	Child  string
}

// Relations expands the record into pairs in left-to-right order.
// A record without children yields a single pair with an empty child.
func (r Record) Relations() []Relation {
	if len(r.Children) == 0 {
		return []Relation{{Parent: r.Parent}}
	}
	relations := make([]Relation, 0, len(r.Children))
	for _, child := range r.Children {
		relations = append(relations, Relation{Parent: r.Parent, Child: child})
	}
	return relations
}

// ParseRecord splits line on delim and trims every name.
// A blank line returns ok=false and no error.
func ParseRecord(line, delim string) (record Record, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Record{}, false, nil
	}
	if delim == "" {
		delim = ","
	}

	fields := strings.Split(trimmed, delim)
	if strings.TrimSpace(fields[0]) == "" {
		return Record{}, false, offspringerrors.NewInvalidRecordError(0, trimmed, "missing parent name")
	}

	var names []string
	for _, field := range fields {
		if name := strings.TrimSpace(field); name != "" {
			names = append(names, name)
		}
	}

	return Record{Parent: names[0], Children: names[1:]}, true, nil
}

// Scan reads records from r, one per line, and calls fn for each.
// Malformed records are collected and returned after the whole input is read;
// an error returned by fn stops the scan.
func Scan(r io.Reader, delim string, fn func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), maxLineSize)

	var errs []error
	lineNum := 0
	for sc.Scan() {
		lineNum++
		record, ok, err := ParseRecord(sc.Text(), delim)
		if err != nil {
			var recErr *offspringerrors.InvalidRecordError
			if errors.As(err, &recErr) {
				recErr.Line = lineNum
			}
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		record.Line = lineNum
		if err := fn(record); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Apply feeds every relation of record to AddChild and returns the resulting
// root. Rejected relations do not stop the remaining ones.
func Apply(writer engine.TreeWriter, root *engine.Node, record Record) (*engine.Node, error) {
	var errs []error
	for _, rel := range record.Relations() {
		newRoot, err := writer.AddChild(root, rel.Parent, rel.Child)
		root = newRoot
		if err != nil {
			errs = append(errs, err)
		}
	}
	return root, errors.Join(errs...)
}

// Load reads every record from r into the tree rooted at root and returns
// the final root together with all rejected records and relations.
func Load(writer engine.TreeWriter, root *engine.Node, r io.Reader, delim string) (*engine.Node, error) {
	var errs []error
	scanErr := Scan(r, delim, func(record Record) error {
		var err error
		root, err = Apply(writer, root, record)
		if err != nil {
			errs = append(errs, &LineError{Line: record.Line, Err: err})
		}
		return nil
	})
	if scanErr != nil {
		errs = append(errs, scanErr)
	}
	return root, errors.Join(errs...)
}

// LineError attaches an input line number to an insertion error
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
