package types

import "fmt"

// ExportFormat identifies a supported export projection of a
// generation outcome.
type ExportFormat string

const (
	ExportODMXML   ExportFormat = "odm-xml"
	ExportFHIRJSON ExportFormat = "fhir-json"
	ExportCSV      ExportFormat = "csv"
	ExportJSON     ExportFormat = "json"
)

// AllExportFormats returns all supported export formats
func AllExportFormats() []ExportFormat {
	return []ExportFormat{
		ExportODMXML,
		ExportFHIRJSON,
		ExportCSV,
		ExportJSON,
	}
}

// IsValid checks if the export format is valid
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportODMXML, ExportFHIRJSON, ExportCSV, ExportJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format
func (f ExportFormat) String() string {
	return string(f)
}

// Extension returns the file extension for the export format
func (f ExportFormat) Extension() string {
	switch f {
	case ExportODMXML:
		return "xml"
	case ExportFHIRJSON, ExportJSON:
		return "json"
	case ExportCSV:
		return "csv"
	default:
		return "dat"
	}
}

// ParseExportFormat parses a string into an ExportFormat
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid export format: %s", s)
	}
	return f, nil
}
