package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses story requests from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed requests.
func (p *JSONParser) Parse(r io.Reader) ([]RawRequest, error) {
	var requests []RawRequest

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&requests); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range requests {
		requests[i].LineNum = i + 1
	}

	return requests, nil
}
