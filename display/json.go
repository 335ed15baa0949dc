package display

import (
	"encoding/json"
	"fmt"
	"os"
)

// MarshalJSON marshals JSON with pretty formatting for human consumption,
// compact formatting when output is being piped to another program
func MarshalJSON(v interface{}) ([]byte, error) {
	if isPiped() {
		return json.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// OutputJSON marshals and prints JSON using display.MarshalJSON
func OutputJSON(v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func isPiped() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
