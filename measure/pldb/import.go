package pldb

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadSignature imports a pressure signature from a delimited text file.
//
// The first column is time in milliseconds, the second pressure in psf.
// headerLines rows are skipped before parsing. An empty delimiter splits
// on arbitrary whitespace; otherwise each line is split on the delimiter
// string. Blank lines are ignored.
func ReadSignature(filename string, headerLines int, delimiter string) (time, pressure []float64, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var fields []string
		if delimiter == "" {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, delimiter)
		}

		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%s:%d: need two columns, got %d", filename, lineNo, len(fields))
		}

		t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad time value %q: %w", filename, lineNo, fields[0], err)
		}

		p, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad pressure value %q: %w", filename, lineNo, fields[1], err)
		}

		time = append(time, t)
		pressure = append(pressure, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return time, pressure, nil
}
