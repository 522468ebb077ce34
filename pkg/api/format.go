package api

import (
	"fmt"
	"strings"
)

// Format selects the response representation requested from the iHealth
// API. The zero value leaves the pipeline's default Accept header in place.
type Format string

const (
	FormatJSON   Format = "json"
	FormatXML    Format = "xml"
	FormatPDF    Format = "pdf"
	FormatCSV    Format = "csv"
	FormatBinary Format = "binary"
)

// mediaTypes fixes the Accept header sent for each format.
var mediaTypes = map[Format]string{
	FormatJSON:   "application/vnd.f5.ihealth.api+json",
	FormatXML:    "application/vnd.f5.ihealth.api+xml",
	FormatPDF:    "application/pdf",
	FormatCSV:    "text/csv",
	FormatBinary: "application/octet-stream",
}

// MediaType returns the Accept header value for the format.
func (f Format) MediaType() string {
	return mediaTypes[f]
}

// ParseFormat maps a user-supplied format name to a Format. Unknown names
// are rejected here so tool handlers fail before any request is built.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := mediaTypes[f]; !ok {
		return "", fmt.Errorf("unknown response format %q (expected json, xml, pdf, csv or binary)", s)
	}
	return f, nil
}
