// internal/vienna/reader.go
// Streaming reader for RNAfold-style Vienna records:
//
//	>name
//	ACGUACGUACGU
//	.((......)). (-3.20)
//
// The structure line and its trailing free-energy annotation are both
// optional; a record with just a header and sequence is a fold request
// with no precomputed structure. Sequence lines may wrap.
package vienna

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Record is one parsed Vienna entry.
type Record struct {
	ID        string
	Seq       string
	Structure string // dot-bracket, "" when absent
	Energy    float64
	HasEnergy bool
}

// ForEach streams records from path ("-" for stdin, gzip transparent)
// to visit, stopping on the first visit error or malformed record.
func ForEach(ctx context.Context, path string, visit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	var cur *Record
	lineNo := 0
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Seq == "" {
			return fmt.Errorf("%s: record %q has no sequence", path, cur.ID)
		}
		rec := *cur
		cur = nil
		return visit(rec)
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, ">"):
			if err := flush(); err != nil {
				return err
			}
			cur = &Record{ID: firstField(line[1:])}
		case cur == nil:
			return fmt.Errorf("%s:%d: data before first '>' header", path, lineNo)
		case isStructureLine(line):
			if cur.Structure != "" {
				return fmt.Errorf("%s:%d: duplicate structure line for %q", path, lineNo, cur.ID)
			}
			st, energy, has, err := splitStructure(line)
			if err != nil {
				return fmt.Errorf("%s:%d: %v", path, lineNo, err)
			}
			cur.Structure, cur.Energy, cur.HasEnergy = st, energy, has
		default:
			if cur.Structure != "" {
				return fmt.Errorf("%s:%d: sequence data after structure line for %q", path, lineNo, cur.ID)
			}
			cur.Seq += line
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return flush()
}

// ReadAll is the convenience collector used by tests and small inputs.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ForEach(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func firstField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// isStructureLine reports whether the line starts with a dot-bracket
// character, which is how Vienna output distinguishes structure from
// sequence.
func isStructureLine(line string) bool {
	switch line[0] {
	case '.', '(', ')':
		return true
	}
	return false
}

// splitStructure separates the dot-bracket body from a trailing
// "(-3.20)" free-energy annotation.
func splitStructure(line string) (structure string, energy float64, has bool, err error) {
	body := line
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		body = line[:i]
		rest := strings.TrimSpace(line[i+1:])
		if rest != "" {
			if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
				return "", 0, false, fmt.Errorf("malformed energy annotation %q", rest)
			}
			v, perr := strconv.ParseFloat(strings.TrimSpace(rest[1:len(rest)-1]), 64)
			if perr != nil {
				return "", 0, false, fmt.Errorf("malformed energy annotation %q", rest)
			}
			energy, has = v, true
		}
	}
	return body, energy, has, nil
}
