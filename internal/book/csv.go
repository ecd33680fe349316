package book

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

var csvHeader = []string{"Index", "ISBN", "Title", "Authors", "Publisher", "Likes", "ReviewCount", "Reviews"}

// WriteCSV writes records as CSV, one row per record. Index is the 1-based
// position in records.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, rec := range records {
		if err := cw.Write(csvRow(i+1, rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(index int, rec Record) []string {
	reviews := make([]string, len(rec.Reviews))
	for i, rv := range rec.Reviews {
		reviews[i] = rv.Author + " (" + strconv.Itoa(rv.Rating) + "★): " + rv.Text
	}
	return []string{
		strconv.Itoa(index),
		rec.ISBN,
		rec.Title,
		strings.Join(rec.Authors, "; "),
		rec.Publisher,
		strconv.Itoa(rec.Likes),
		strconv.Itoa(len(rec.Reviews)),
		strings.Join(reviews, " | "),
	}
}
