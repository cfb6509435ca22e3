package service

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/Aashish23092/prayer-timetable/dto"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/timetable.schema.json
var timetableSchemaJSON string

var timetableSchema = jsonschema.MustCompileString("timetable.schema.json", timetableSchemaJSON)

// ValidateTimetableJSON checks encoded output against the timetable schema.
func ValidateTimetableJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal output: %w", err)
	}
	if err := timetableSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", dto.ErrSchemaInvalid, err)
	}
	return nil
}
