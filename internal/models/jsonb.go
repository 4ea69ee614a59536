package models

import (
	"encoding/json"
	"fmt"
)

// jsonbScan unmarshals a jsonb column into dest. Postgres hands the value
// over either as []byte or string depending on the driver path.
func jsonbScan(dest interface{}, value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
