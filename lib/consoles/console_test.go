package consoles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterConsolePrefixesTimestamp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewWriterConsole(&buf)

	c.Printf("loaded %v projects\n", 3)

	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\] loaded 3 projects\n$`, buf.String())
}
