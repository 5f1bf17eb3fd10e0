package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MovementDirection represents whether cash moved into or out of the drawer
type MovementDirection int

const (
	MovementDirectionIn  MovementDirection = 0
	MovementDirectionOut MovementDirection = 1
)

func (d MovementDirection) Valid() bool {
	return d == MovementDirectionIn || d == MovementDirectionOut
}

func (d MovementDirection) String() string {
	return [...]string{"in", "out"}[d]
}

func (d MovementDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *MovementDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = MovementDirection(i)
		return nil
	}
	switch str {
	case "in":
		*d = MovementDirectionIn
	case "out":
		*d = MovementDirectionOut
	default:
		return fmt.Errorf("unknown movement direction %q", str)
	}
	return nil
}

func (d MovementDirection) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *MovementDirection) Scan(value interface{}) error {
	if value == nil {
		*d = MovementDirectionIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = MovementDirection(v)
	case int:
		*d = MovementDirection(v)
	}
	return nil
}
