package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	dialTimeout  = 5 * time.Second
	pingTimeout  = 2 * time.Second
	writeTimeout = 10 * time.Second
)

// Printer sends raw ESC/POS bytes to till hardware. Connections are
// per job; a till prints a handful of tickets a minute at most, so
// holding a handle open buys nothing and loses hot-unplug recovery.
type Printer interface {
	Print(data []byte) error
	Close() error
	IsConnected() bool
}

// devicePrinter writes each job straight to a printer device file,
// typically /dev/usb/lp0.
type devicePrinter struct {
	path string
}

// NewUSBPrinter creates a printer backed by a USB device file.
func NewUSBPrinter(devicePath string) Printer {
	return &devicePrinter{path: devicePath}
}

func (p *devicePrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open printer device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write to printer device %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Close() error {
	return nil
}

func (p *devicePrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// socketPrinter dials the printer's raw TCP socket for each job. Most
// ESC/POS hardware listens on port 9100.
type socketPrinter struct {
	address string
}

// NewNetworkPrinter creates a printer reached over TCP, address as
// host:port.
func NewNetworkPrinter(address string) Printer {
	return &socketPrinter{address: address}
}

func (p *socketPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, dialTimeout)
	if err != nil {
		return fmt.Errorf("dial printer %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("write to printer %s: %w", p.address, err)
	}
	return nil
}

func (p *socketPrinter) Close() error {
	return nil
}

func (p *socketPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, pingTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// nullPrinter swallows every job so the rest of the system runs on a
// till with no hardware attached.
type nullPrinter struct{}

// NewNullPrinter creates a printer that discards everything.
func NewNullPrinter() Printer {
	return &nullPrinter{}
}

func (p *nullPrinter) Print(data []byte) error { return nil }
func (p *nullPrinter) Close() error            { return nil }
func (p *nullPrinter) IsConnected() bool       { return false }

// NewPrinterFromConfig picks a transport from the configured type:
// "usb" writes to a device file, "network" dials host:port, "none" or
// empty discards output.
func NewPrinterFromConfig(printerType, devicePath, address string) (Printer, error) {
	switch printerType {
	case "usb":
		if devicePath == "" {
			return nil, fmt.Errorf("usb printer needs a device path")
		}
		return NewUSBPrinter(devicePath), nil
	case "network":
		if address == "" {
			return nil, fmt.Errorf("network printer needs an address")
		}
		return NewNetworkPrinter(address), nil
	case "none", "":
		return NewNullPrinter(), nil
	default:
		return nil, fmt.Errorf("unknown printer type %q", printerType)
	}
}
