package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinterFromConfigSelectsTransport(t *testing.T) {
	p, err := NewPrinterFromConfig("usb", "/dev/usb/lp0", "")
	require.NoError(t, err)
	assert.IsType(t, &devicePrinter{}, p)

	p, err = NewPrinterFromConfig("network", "", "192.168.1.50:9100")
	require.NoError(t, err)
	assert.IsType(t, &socketPrinter{}, p)

	p, err = NewPrinterFromConfig("none", "", "")
	require.NoError(t, err)
	assert.IsType(t, &nullPrinter{}, p)

	// An unconfigured till defaults to discarding output
	p, err = NewPrinterFromConfig("", "", "")
	require.NoError(t, err)
	assert.IsType(t, &nullPrinter{}, p)
}

func TestNewPrinterFromConfigRejectsIncomplete(t *testing.T) {
	_, err := NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("serial", "", "")
	assert.Error(t, err)
}

func TestNullPrinterSwallowsJobs(t *testing.T) {
	p := NewNullPrinter()

	assert.NoError(t, p.Print([]byte{0x1B, 0x40}))
	assert.NoError(t, p.Close())
	assert.False(t, p.IsConnected())
}
