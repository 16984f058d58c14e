package dem

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// headerLines lists the accepted keywords for each of the six header lines, in order.
var headerLines = [][]string{
	{"NCOLS"},
	{"NROWS"},
	{"XLLCORNER", "XLLCENTER"},
	{"YLLCORNER", "YLLCENTER"},
	{"CELLSIZE"},
	{"NODATA_VALUE"},
}

// initial capacity cap, so a bogus header can't make us allocate gigabytes up front
const maxPrealloc = 1 << 20

// ParseEsriASCIIRaster reads an ESRI ASCII Grid from reader.
//
// The six header lines must appear in the fixed order NCOLS, NROWS, XLLCORNER (or
// XLLCENTER), YLLCORNER (or YLLCENTER), CELLSIZE, NODATA_VALUE. The value of each
// header line is its last whitespace-separated token.
//
// The data section is read as a stream of whitespace-separated tokens, line breaks
// don't matter. Reading stops once NCOLS*NROWS samples have been consumed.
// A token that is not a finite number is stored as the no-data value instead of
// failing the parse; this lenient recovery is intended. A data section with
// fewer samples than declared is a *FormatError.
func ParseEsriASCIIRaster(reader io.Reader) (*EsriASCIIRaster, error) {
	raster := &EsriASCIIRaster{}
	buffered := bufio.NewReader(reader)

	var xCenter, yCenter bool

	for i, keywords := range headerLines {
		lineNo := i + 1

		line, err := buffered.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &IOError{Err: err}
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("missing %s header", keywords[0])}
		}
		if len(fields) < 2 {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("header line must have a keyword and a value, got %q", strings.TrimSpace(line))}
		}

		keyword := strings.ToUpper(fields[0])
		if !contains(keywords, keyword) {
			return nil, &FormatError{Line: lineNo, Msg: fmt.Sprintf("expected %s header, got %s", strings.Join(keywords, " or "), fields[0])}
		}

		value := fields[len(fields)-1]

		switch keyword {
		case "NCOLS", "NROWS":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Msg: keyword + " is not an integer", Err: err}
			}
			if n == 0 {
				return nil, &FormatError{Line: lineNo, Msg: keyword + " must be greater than 0"}
			}
			if keyword == "NCOLS" {
				raster.Ncols = int(n)
			} else {
				raster.Nrows = int(n)
			}
		case "XLLCORNER", "XLLCENTER":
			f, err := parseHeaderFloat(lineNo, keyword, value)
			if err != nil {
				return nil, err
			}
			raster.Xll = f
			xCenter = keyword == "XLLCENTER"
		case "YLLCORNER", "YLLCENTER":
			f, err := parseHeaderFloat(lineNo, keyword, value)
			if err != nil {
				return nil, err
			}
			raster.Yll = f
			yCenter = keyword == "YLLCENTER"
		case "CELLSIZE":
			f, err := parseHeaderFloat(lineNo, keyword, value)
			if err != nil {
				return nil, err
			}
			raster.CellSize = f
		case "NODATA_VALUE":
			f, err := parseHeaderFloat(lineNo, keyword, value)
			if err != nil {
				return nil, err
			}
			// NaN never equals itself, no sample could be recognized as no-data
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, &FormatError{Line: lineNo, Msg: keyword + " must be a finite number"}
			}
			raster.NoDataValue = f
		}
	}

	// there can either be corner or center not both
	if xCenter != yCenter {
		return nil, &FormatError{Line: 4, Msg: "XLL and YLL must both be corners or both be centers"}
	}
	raster.Center = xCenter

	if raster.Nrows > math.MaxInt/raster.Ncols {
		return nil, &FormatError{Line: 2, Msg: "NCOLS*NROWS overflows"}
	}
	n := raster.Ncols * raster.Nrows
	data := make([]float64, 0, min(n, maxPrealloc))

	scanner := bufio.NewScanner(buffered)
	scanner.Split(bufio.ScanWords)

	for len(data) < n && scanner.Scan() {
		data = append(data, parseSample(scanner.Text(), raster.NoDataValue))
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	if len(data) != n {
		return nil, &FormatError{Msg: fmt.Sprintf("expected %d samples (%d x %d), got %d", n, raster.Ncols, raster.Nrows, len(data))}
	}

	raster.Data = data

	return raster, nil
}

func parseHeaderFloat(lineNo int, keyword string, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &FormatError{Line: lineNo, Msg: keyword + " is not a number", Err: err}
	}
	return f, nil
}

// parseSample substitutes noData for anything that isn't a finite number
func parseSample(token string, noData float64) float64 {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return noData
	}
	return f
}

// contains checks whether an array contains a string
func contains(array []string, element string) bool {
	for _, curElement := range array {
		if curElement == element {
			return true
		}
	}
	return false
}
