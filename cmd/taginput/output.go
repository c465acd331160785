package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	apperrors "taginput/internal/errors"
)

const (
	formatLines = "lines"
	formatCSV   = "csv"
	formatJSON  = "json"
)

var outputFormats = []string{formatLines, formatCSV, formatJSON}

func validOutputFormat(format string) bool {
	switch format {
	case formatLines, formatCSV, formatJSON:
		return true
	}
	return false
}

// writeTags prints the submitted tags in format.
func writeTags(w io.Writer, format string, tags []string) error {
	var err error
	switch format {
	case formatCSV:
		if len(tags) == 0 {
			return nil
		}
		cw := csv.NewWriter(w)
		if err = cw.Write(tags); err == nil {
			cw.Flush()
			err = cw.Error()
		}
	case formatJSON:
		if tags == nil {
			tags = []string{}
		}
		err = json.NewEncoder(w).Encode(tags)
	case formatLines:
		for _, tag := range tags {
			if _, err = fmt.Fprintln(w, tag); err != nil {
				break
			}
		}
	default:
		return apperrors.New(apperrors.CodeInvalidFlag, fmt.Sprintf("unknown output format %q", format), nil)
	}
	if err != nil {
		return apperrors.New(apperrors.CodeWriteFailed, "write tags", err)
	}
	return nil
}
