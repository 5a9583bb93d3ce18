package book

import "errors"

// LanguageLevel is the target reading level for generated copy. It only
// influences the text-generation prompt, never the page template.
type LanguageLevel string

const (
	PreReader       LanguageLevel = "pre_reader"
	EarlyReader     LanguageLevel = "early_reader"
	ConfidentReader LanguageLevel = "confident_reader"
)

func (l LanguageLevel) Valid() bool {
	switch l {
	case PreReader, EarlyReader, ConfidentReader:
		return true
	}
	return false
}

// ActivityInput is the user-supplied descriptor for one generation run.
// It is immutable once submitted; the run's book carries it as Meta.
type ActivityInput struct {
	Age                int           `json:"age"`
	DestinationCountry string        `json:"destinationCountry"`
	DestinationCity    string        `json:"destinationCity,omitempty"`
	LanguageLevel      LanguageLevel `json:"languageLevel"`
	ActivityMix        []string      `json:"activityMix,omitempty"`

	// StyleReferenceImage is an optional base64 data URI forwarded verbatim
	// to the image generator as a style anchor.
	StyleReferenceImage string `json:"styleReferenceImage,omitempty"`
}

var (
	ErrNoDestination = errors.New("destination country is required")
	ErrUnknownLevel  = errors.New("unknown language level")
)

func (in ActivityInput) Validate() error {
	if in.DestinationCountry == "" {
		return ErrNoDestination
	}
	if in.LanguageLevel != "" && !in.LanguageLevel.Valid() {
		return ErrUnknownLevel
	}
	return nil
}

// Destination returns the display name used across all page titles and
// image prompts: the city when given, otherwise the country.
func (in ActivityInput) Destination() string {
	if in.DestinationCity != "" {
		return in.DestinationCity
	}
	return in.DestinationCountry
}
