// Package schema validates canonical bill records before they are
// persisted or billed against.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/katiyar-electronics/bill-engine/internal/common"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

//go:embed bill_record.schema.json
var billRecordSchema string

var compiled = mustCompile()

func mustCompile() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bill_record.schema.json", strings.NewReader(billRecordSchema)); err != nil {
		panic(fmt.Sprintf("add bill record schema: %v", err))
	}
	return compiler.MustCompile("bill_record.schema.json")
}

// ValidateRecord checks a canonical record against the embedded JSON
// schema. A failure wraps common.ErrValidation.
func ValidateRecord(record entity.BillRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return common.NewAppError("RECORD_INVALID", err.Error(), common.ErrValidation)
	}
	return nil
}
