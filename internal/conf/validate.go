// conf/validate.go

package conf

import (
	"fmt"
)

// ValidationError represents a collection of validation errors
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("Validation errors: %v", ve.Errors)
}

// ValidateSettings validates the entire Settings struct.
// Out-of-range thresholds are reported here, never silently clamped.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	if err := validateClassifierSettings(&settings.Classifier); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateOutputSettings(&settings.Output); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if err := validateProcessingSettings(&settings.Processing); err != nil {
		ve.Errors = append(ve.Errors, err.Error())
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validateClassifierSettings validates the classifier threshold settings
func validateClassifierSettings(settings *ClassifierSettings) error {
	var errs []string

	if settings.ConfidenceThreshold < 0 || settings.ConfidenceThreshold > 1 {
		errs = append(errs, "classifier confidence threshold must be between 0 and 1")
	}

	if settings.DominantSpeciesThreshold < 0 || settings.DominantSpeciesThreshold > 1 {
		errs = append(errs, "classifier dominant species threshold must be between 0 and 1")
	}

	if settings.MaxSpeciesTransitions < 0 {
		errs = append(errs, "classifier max species transitions must not be negative")
	}

	if settings.ConsecutiveEmptyFrames < 1 {
		errs = append(errs, "classifier consecutive empty frames must be at least 1")
	}

	if settings.UnknownShareThreshold < 0 || settings.UnknownShareThreshold > 1 {
		errs = append(errs, "classifier unknown share threshold must be between 0 and 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("classifier settings errors: %v", errs)
	}
	return nil
}

// validateOutputSettings validates the output settings
func validateOutputSettings(settings *OutputSettings) error {
	var errs []string

	switch settings.File.Format {
	case "", "table", "csv", "json":
	default:
		errs = append(errs, fmt.Sprintf("output file format '%s' is not supported, use table, csv or json", settings.File.Format))
	}

	if settings.SQLite.Enabled && settings.SQLite.Path == "" {
		errs = append(errs, "output SQLite path must be set when SQLite output is enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("output settings errors: %v", errs)
	}
	return nil
}

// validateProcessingSettings validates the processing settings
func validateProcessingSettings(settings *ProcessingSettings) error {
	if settings.Workers < 0 {
		return fmt.Errorf("processing workers must not be negative")
	}
	return nil
}
