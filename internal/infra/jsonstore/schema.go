package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/okanos/tasktab/internal/domain"
)

// schemaJSON describes the persisted task array. The patterns only
// cover the normalized stored shape; calendar validity and the like
// are checked by the domain validators on top.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["date", "time", "priority", "description"],
    "additionalProperties": false,
    "properties": {
      "date": {
        "type": "string",
        "pattern": "^\\d{4}-\\d{2}-\\d{2}$"
      },
      "time": {
        "type": "string",
        "pattern": "^\\d{2}:\\d{2}$"
      },
      "priority": {
        "type": "string",
        "enum": ["c", "h", "n", "l"]
      },
      "description": {
        "type": "array",
        "minItems": 1,
        "items": {
          "type": "string",
          "minLength": 1
        }
      }
    }
  }
}`

var storeSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("tasks.schema.json", strings.NewReader(schemaJSON)); err != nil {
		// Should never happen with the embedded schema
		panic(fmt.Sprintf("failed to add schema resource: %v", err))
	}
	schema, err := c.Compile("tasks.schema.json")
	if err != nil {
		// Should never happen with the embedded schema
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
	return schema
}

// Check validates the store file against the embedded schema and the
// domain rules. A missing file reports as valid with zero tasks.
func (s *Store) Check() (*domain.StoreCheck, error) {
	var check *domain.StoreCheck
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				check = &domain.StoreCheck{Missing: true}
				return nil
			}
			return fmt.Errorf("read store file: %w", err)
		}

		check = checkContent(content)
		return nil
	})
	return check, err
}

// checkContent runs the schema and domain checks over raw file bytes.
func checkContent(content []byte) *domain.StoreCheck {
	check := &domain.StoreCheck{}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		check.Problems = append(check.Problems, fmt.Sprintf("not valid JSON: %v", err))
		return check
	}

	if err := storeSchema.Validate(doc); err != nil {
		appendSchemaProblems(check, err)
	}

	// The schema covers shape only; decoding and the domain validators
	// catch things like dates that match the pattern but are not on
	// the calendar.
	var tasks []*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		check.Problems = append(check.Problems, err.Error())
		return check
	}

	check.Tasks = len(tasks)
	for i, task := range tasks {
		if err := task.Validate(); err != nil {
			check.Problems = append(check.Problems, fmt.Sprintf("task %d: %v", i+1, err))
		}
	}

	return check
}

func appendSchemaProblems(check *domain.StoreCheck, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		check.Problems = append(check.Problems, err.Error())
		return
	}
	collectLeafCauses(check, ve)
}

// collectLeafCauses walks to the leaf causes so each problem names the
// exact instance location instead of the whole-document summary.
func collectLeafCauses(check *domain.StoreCheck, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		check.Problems = append(check.Problems, fmt.Sprintf("%s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectLeafCauses(check, cause)
	}
}
