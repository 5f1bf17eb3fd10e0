package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyValueAlignsToWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset() // drop the init bytes for easier inspection
	out := doc.KeyValue("Total:", "18.15").Bytes()

	line := bytes.TrimPrefix(out, []byte{ESC, '@'})
	line = bytes.TrimSuffix(line, []byte{LF})
	assert.Len(t, line, 32)
	assert.True(t, bytes.HasPrefix(line, []byte("Total:")))
	assert.True(t, bytes.HasSuffix(line, []byte("18.15")))
}

func TestDrawerKickPulse(t *testing.T) {
	doc := NewDocument(32)
	out := doc.DrawerKick().Bytes()

	assert.True(t, bytes.HasSuffix(out, []byte{ESC, 'p', 0x00, 0x32, 0x7D}))
}

func TestItemLineNeverCollapses(t *testing.T) {
	doc := NewDocument(20)
	out := doc.ItemLine(2, "A very long item name", "99.99").Bytes()

	// Name longer than the paper still keeps one space before the total
	assert.Contains(t, string(out), "2x A very long item name 99.99")
}
