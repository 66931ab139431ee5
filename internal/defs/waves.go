package defs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WaveGroup is one sub-wave of a campaign row.
type WaveGroup struct {
	Type     string
	Quantity int
}

// WaveRow is one line of a campaign wave file:
// number, modifier, rank, type1, quant1, type2, quant2, type3, quant3.
type WaveRow struct {
	Number   int
	Modifier string
	Rank     int
	Groups   []WaveGroup
}

const waveColumns = 9

// ParseWaveCSV reads a campaign file. The first row is a header.
// Unreadable quantities count as zero; an unreadable number or rank is an error.
func ParseWaveCSV(r io.Reader) ([]WaveRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("wave file is empty")
		}
		return nil, fmt.Errorf("failed to read wave header: %w", err)
	}

	var rows []WaveRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("wave line %d: %w", line, err)
		}
		if len(rec) < waveColumns {
			padded := make([]string, waveColumns)
			copy(padded, rec)
			rec = padded
		}
		number, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("wave line %d: bad number %q", line, rec[0])
		}
		rank, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("wave line %d: bad rank %q", line, rec[2])
		}
		row := WaveRow{Number: number, Modifier: strings.TrimSpace(rec[1]), Rank: rank}
		for k := 3; k+1 < waveColumns; k += 2 {
			q, err := strconv.Atoi(strings.TrimSpace(rec[k+1]))
			if err != nil {
				q = 0
			}
			row.Groups = append(row.Groups, WaveGroup{Type: strings.TrimSpace(rec[k]), Quantity: q})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadWaveFile opens and parses a campaign wave file.
func LoadWaveFile(path string) ([]WaveRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wave file: %w", err)
	}
	defer f.Close()
	rows, err := ParseWaveCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
