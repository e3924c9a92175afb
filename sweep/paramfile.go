package sweep

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// parameterColumns in the order of the data row.
var parameterColumns = []string{
	"primary", "startNumber", "endNumber",
	"energyStart", "energyEnd", "energyStep",
	"zenithStart", "zenithEnd", "obslev",
}

// ReadParameterFile reads a sweep from path.
func ReadParameterFile(path string) (Sweep, error) {
	file, err := os.Open(path)
	if err != nil {
		return Sweep{}, errs.Configuration("input parameter file: %v", err)
	}
	defer file.Close()
	return ParseParameters(file)
}

// ParseParameters reads a parameter file: one header line followed by one
// whitespace separated row of nine numbers. Text after '#' is a comment.
func ParseParameters(r io.Reader) (Sweep, error) {
	scanner := bufio.NewScanner(r)
	headerSkipped := false
	var fields []string
	for scanner.Scan() {
		if !headerSkipped {
			headerSkipped = true
			continue
		}
		line := scanner.Text()
		if index := strings.IndexByte(line, '#'); index >= 0 {
			line = line[:index]
		}
		if fields = strings.Fields(line); len(fields) > 0 {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Sweep{}, errs.IO("read parameters: %w", err)
	}
	if len(fields) != len(parameterColumns) {
		return Sweep{}, errs.Configuration(
			"parameter row has %d columns, expected %d: %s",
			len(fields), len(parameterColumns), strings.Join(parameterColumns, " "),
		)
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Sweep{}, errs.Configuration("column %s: %q is not a number", parameterColumns[i], field)
		}
		values[i] = value
	}

	s := Sweep{
		EnergyStart: values[3],
		EnergyEnd:   values[4],
		EnergyStep:  values[5],
		ZenithStart: values[6],
		ZenithEnd:   values[7],
		ObsLevel:    values[8],
	}
	for column, target := range []*int{&s.Primary, &s.StartRun, &s.EndRun} {
		if values[column] != math.Trunc(values[column]) {
			return Sweep{}, errs.Configuration(
				"column %s: %v is not an integer", parameterColumns[column], values[column],
			)
		}
		*target = int(values[column])
	}
	return s, nil
}
