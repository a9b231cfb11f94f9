//go:build linux && !mips && !mipsle

// Package transport: direct USB HID access on Linux via gousb, bypassing
// any kernel HID driver binding. Mirrors the cascading open/cleanup and
// context-timeout read/write discipline of the inherited USB transport.
package transport

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/gousb"
)

// HIDTransport is a gousb-backed Transport for a single USB HID interface.
type HIDTransport struct {
	vendorID  gousb.ID
	productID gousb.ID

	reportInSize  int
	reportOutSize int

	ctx    *gousb.Context
	device *gousb.Device
	config *gousb.Config
	intf   *gousb.Interface
	epOut  *gousb.OutEndpoint
	epIn   *gousb.InEndpoint

	serial string
}

// NewHIDTransport constructs a transport for the given VID/PID. reportIn and
// reportOut size the HID reports this product uses; see deviceprofile for
// the table of observed values.
func NewHIDTransport(vendorID, productID gousb.ID, reportIn, reportOut int) *HIDTransport {
	return &HIDTransport{
		vendorID:      vendorID,
		productID:     productID,
		reportInSize:  reportIn,
		reportOutSize: reportOut,
	}
}

// Open acquires the USB context, device, configuration, interface and
// endpoints, in that order, tearing down everything acquired so far on any
// failure step.
func (t *HIDTransport) Open() error {
	ctx := gousb.NewContext()

	device, err := ctx.OpenDeviceWithVIDPID(t.vendorID, t.productID)
	if err != nil {
		ctx.Close()
		return fmt.Errorf("open USB device: %w", err)
	}
	if device == nil {
		ctx.Close()
		return fmt.Errorf("USB device not found (VID:0x%04x PID:0x%04x)", t.vendorID, t.productID)
	}

	config, err := device.Config(1)
	if err != nil {
		device.Close()
		ctx.Close()
		return fmt.Errorf("set USB config: %w", err)
	}

	intf, err := config.Interface(0, 0)
	if err != nil {
		config.Close()
		device.Close()
		ctx.Close()
		return fmt.Errorf("claim USB interface: %w", err)
	}

	epOut, err := intf.OutEndpoint(1)
	if err != nil {
		intf.Close()
		config.Close()
		device.Close()
		ctx.Close()
		return fmt.Errorf("open OUT endpoint: %w", err)
	}

	epIn, err := intf.InEndpoint(0x81)
	if err != nil {
		intf.Close()
		config.Close()
		device.Close()
		ctx.Close()
		return fmt.Errorf("open IN endpoint: %w", err)
	}

	serial, _ := device.SerialNumber()

	t.ctx, t.device, t.config, t.intf, t.epOut, t.epIn, t.serial =
		ctx, device, config, intf, epOut, epIn, serial

	log.Printf("transport: opened HID device VID:0x%04x PID:0x%04x", t.vendorID, t.productID)
	return nil
}

// Close releases handles in reverse acquisition order. Safe to call
// multiple times or on a never-opened transport.
func (t *HIDTransport) Close() error {
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.config != nil {
		t.config.Close()
		t.config = nil
	}
	if t.device != nil {
		t.device.Close()
		t.device = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
	t.epOut, t.epIn = nil, nil
	return nil
}

// IsOpen reports whether the transport currently holds a live device handle.
func (t *HIDTransport) IsOpen() bool {
	return t.device != nil
}

// Write sends one HID report to the OUT endpoint.
func (t *HIDTransport) Write(data []byte, timeout time.Duration) (int, error) {
	if !t.IsOpen() {
		return 0, ErrNotOpen
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	n, err := t.epOut.WriteContext(ctx, data)
	if err != nil {
		return n, &ConnectionError{Op: "write", Err: err}
	}
	return n, nil
}

// Read receives one HID report from the IN endpoint into buf.
func (t *HIDTransport) Read(buf []byte, timeout time.Duration) (int, error) {
	if !t.IsOpen() {
		return 0, ErrNotOpen
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	n, err := t.epIn.ReadContext(ctx, buf)
	if err != nil {
		if ctx.Err() != nil {
			return n, &TimeoutError{Op: "read"}
		}
		return n, &ConnectionError{Op: "read", Err: err}
	}
	return n, nil
}

// Info reports the product id, serial number and configured report sizes.
func (t *HIDTransport) Info() Info {
	return Info{
		ProductID:     uint16(t.productID),
		Serial:        t.serial,
		ReportInSize:  t.reportInSize,
		ReportOutSize: t.reportOutSize,
	}
}
