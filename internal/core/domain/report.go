package domain

import "errors"

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)
