package cli

import (
	"os"
	"testing"

	"github.com/alexanderramin/pathsense/internal/cli/formatter"
)

func TestMain(m *testing.M) {
	formatter.SetColorEnabled(false)
	os.Exit(m.Run())
}
