package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// Row is one sample of one series in the Parquet table.
type Row struct {
	Series string  `parquet:"series,dict"`
	Index  int64   `parquet:"index"`
	Time   float64 `parquet:"time"`
	Value  float64 `parquet:"value"`
}

// Rows flattens tracks into table rows. A track without a time axis gets
// Time equal to its sample index.
func Rows(tracks []Track) ([]Row, error) {
	total := 0
	for _, t := range tracks {
		if err := t.validate(); err != nil {
			return nil, err
		}
		total += len(t.Values)
	}

	rows := make([]Row, 0, total)
	for _, t := range tracks {
		for i, v := range t.Values {
			ts := float64(i)
			if t.Time != nil {
				ts = t.Time[i]
			}
			rows = append(rows, Row{Series: t.Name, Index: int64(i), Time: ts, Value: v})
		}
	}
	return rows, nil
}

// WriteParquet writes tracks as a Snappy-compressed Parquet table and
// returns the number of rows written.
func WriteParquet(w io.Writer, tracks []Track) (int, error) {
	rows, err := Rows(tracks)
	if err != nil {
		return 0, err
	}

	pw := parquet.NewGenericWriter[Row](w, parquet.Compression(&parquet.Snappy))
	n, err := pw.Write(rows)
	if err != nil {
		_ = pw.Close()
		return n, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return n, fmt.Errorf("close parquet writer: %w", err)
	}
	return n, nil
}

// WriteParquetFile writes tracks to path.
func WriteParquetFile(path string, tracks []Track) (n int, err error) {
	f, err := createFile(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteParquet(f, tracks)
}

// ReadParquet reads every row of a table written by WriteParquet.
func ReadParquet(r io.ReaderAt) ([]Row, error) {
	gr := parquet.NewGenericReader[Row](r)
	defer gr.Close()

	out := make([]Row, 0, 1024)
	batch := make([]Row, 1024)
	for {
		n, err := gr.Read(batch)
		if n > 0 {
			out = append(out, batch[:n]...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}
	return out, nil
}
