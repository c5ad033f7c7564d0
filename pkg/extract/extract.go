// Package extract pulls promulgation metadata out of a single law XML
// document: the era-calendar date carried by the root element's
// attributes, the law number, and the law title.
//
// Documents are streamed token by token; no DOM is materialized.
// Corpus files can run to megabytes and only a handful of fields are
// needed.
package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/coolbeans/lawindex/pkg/law"
)

// Fields holds the metadata extracted from one law XML document.
type Fields struct {
	// Date is the promulgation date from the Law element's attributes.
	Date law.Date
	// Num is the law number from the LawNum element.
	Num string
	// Title is the law title from the LawTitle element, excluding
	// any nested Ruby (furigana) annotation text.
	Title string
}

// UnrecognizedEraError reports an Era attribute value outside the five
// known era names. It is scoped to one file: callers skip the file and
// continue the run.
type UnrecognizedEraError struct {
	Value string
}

func (e *UnrecognizedEraError) Error() string {
	return fmt.Sprintf("unrecognized era %q in Law element", e.Value)
}

// EncodingError reports a document whose declared character encoding
// cannot be resolved or whose bytes cannot be decoded.
type EncodingError struct {
	Charset string
	Err     error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot decode document encoding %q: %v", e.Charset, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// charsetReader resolves an XML encoding declaration to a decoding
// reader. Current corpus variants are all UTF-8, for which this is
// never invoked; declared legacy encodings resolve through x/text.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, &EncodingError{Charset: charset, Err: err}
	}
	return enc.NewDecoder().Reader(input), nil
}

// Extract streams one law XML document and returns its metadata
// fields. It returns (nil, nil) when the document carries no Law
// element or no usable Era/Year attributes, and an error when the
// document cannot be tokenized or names an era outside the known
// five.
func Extract(r io.Reader) (*Fields, error) {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	decoder.CharsetReader = charsetReader

	var date *law.Date
	var lawNum, lawTitle string

	inLawNum := false
	inTitle := false
	inRuby := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var encErr *EncodingError
			if errors.As(err, &encErr) {
				return nil, encErr
			}
			return nil, fmt.Errorf("failed to tokenize law XML: %w", err)
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "Law":
				parsed, err := dateFromLawAttrs(tok.Attr)
				if err != nil {
					return nil, err
				}
				date = parsed
			case "LawNum":
				inLawNum = true
			case "LawTitle":
				inTitle = true
			case "Ruby":
				inRuby = true
			}

		case xml.EndElement:
			switch tok.Name.Local {
			case "LawNum":
				inLawNum = false
			case "LawTitle":
				inTitle = false
			case "Ruby":
				inRuby = false
			}

		case xml.CharData:
			text := strings.TrimSpace(string(tok))
			if text == "" {
				break
			}
			// Each text segment replaces the captured value rather
			// than appending. Ruby annotation text never reaches the
			// title.
			if inLawNum && !inRuby {
				lawNum = text
			} else if inTitle && !inRuby {
				lawTitle = text
			}
		}
	}

	if date == nil {
		return nil, nil
	}
	return &Fields{Date: *date, Num: lawNum, Title: lawTitle}, nil
}

// ExtractFile opens path and extracts its metadata fields.
func ExtractFile(path string) (*Fields, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open law XML %s: %w", path, err)
	}
	defer file.Close()
	return Extract(file)
}

// dateFromLawAttrs reads the promulgation date from the Law element's
// attribute set. Month and day attributes have two synonymous names
// because document subtypes promulgate under different schemas; the
// first matching attribute wins. A missing or unparsable Era or Year
// yields a nil date (treated as "no data" at end of stream); an Era
// value outside the known five is an UnrecognizedEraError.
func dateFromLawAttrs(attrs []xml.Attr) (*law.Date, error) {
	eraValue, eraFound := findAttr(attrs, "Era")
	if !eraFound {
		return nil, nil
	}
	era, ok := law.ParseEra(eraValue)
	if !ok {
		return nil, &UnrecognizedEraError{Value: eraValue}
	}

	yearValue, yearFound := findAttr(attrs, "Year")
	if !yearFound {
		return nil, nil
	}
	year, err := strconv.Atoi(yearValue)
	if err != nil {
		return nil, nil
	}

	month := optionalIntAttr(attrs, "Month", "PromulgateMonth")
	day := optionalIntAttr(attrs, "Day", "PromulgateDay")

	date := law.NewDate(era, year, month, day)
	return &date, nil
}

// findAttr returns the value of the first attribute matching any of
// the given local names.
func findAttr(attrs []xml.Attr, names ...string) (string, bool) {
	for _, attr := range attrs {
		for _, name := range names {
			if attr.Name.Local == name {
				return attr.Value, true
			}
		}
	}
	return "", false
}

// optionalIntAttr parses an optional integer attribute, returning nil
// when absent or non-numeric.
func optionalIntAttr(attrs []xml.Attr, names ...string) *int {
	value, found := findAttr(attrs, names...)
	if !found {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
