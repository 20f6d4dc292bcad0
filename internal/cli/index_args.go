package cli

import (
	"fmt"
	"strconv"
)

// topicArgs parses the MODULE and TOPIC positional arguments. Negative
// numbers (given after "--") are passed through so the tracker reports them
// as out of range.
func topicArgs(args []string) (int, int, error) {
	m, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid module number %q", args[0])
	}
	t, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid topic number %q", args[1])
	}
	return m, t, nil
}
