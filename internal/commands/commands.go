// Package commands implements the device query and control commands: thin
// wrappers over the transaction engine for operations that aren't file
// transfers or directory walks.
package commands

import (
	"fmt"

	"wristsync/internal/engine"
	"wristsync/internal/protocol"
)

// FormatError wraps a non-zero error field from FormatWatch.
type FormatError struct {
	Code uint32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format watch failed: device error code %d", e.Code)
}

// GetWatchTime returns the device's current time as seconds since the UNIX epoch.
func GetWatchTime(eng *engine.Engine) (uint32, error) {
	resp, err := eng.Transaction(protocol.GetWatchTime, nil, nil)
	if err != nil {
		return 0, err
	}
	return protocol.ParseWatchTimeResponse(resp.Structured).Time, nil
}

// GetFirmwareVersion returns the device firmware version string.
func GetFirmwareVersion(eng *engine.Engine) (string, error) {
	resp, err := eng.Transaction(protocol.GetFirmwareVersion, nil, nil)
	if err != nil {
		return "", err
	}
	return string(resp.Trailer), nil
}

// GetBleVersion returns the device's BLE firmware version string.
func GetBleVersion(eng *engine.Engine) (string, error) {
	resp, err := eng.Transaction(protocol.GetBleVersion, nil, nil)
	if err != nil {
		return "", err
	}
	return string(resp.Trailer), nil
}

// GetProductId returns the 32-bit product identifier.
func GetProductId(eng *engine.Engine) (uint32, error) {
	resp, err := eng.Transaction(protocol.GetProductId, nil, nil)
	if err != nil {
		return 0, err
	}
	return protocol.ParseProductID(resp.Structured), nil
}

// FormatWatch erases the device's file system. Destructive: callers must
// gate this behind an explicit confirmation step of their own.
func FormatWatch(eng *engine.Engine) error {
	resp, err := eng.Transaction(protocol.FormatWatch, nil, nil)
	if err != nil {
		return err
	}
	if code := protocol.ParseFormatResponse(resp.Structured); code != 0 {
		return &FormatError{Code: code}
	}
	return nil
}

// ResetDevice reboots the device. Send-only: the device is not expected to
// answer, matching the source's documented (if unverified) behavior.
func ResetDevice(eng *engine.Engine) error {
	return eng.Send(protocol.ResetDevice, nil, nil)
}

// ResetGpsProcessor resets the device's GPS subsystem and returns the
// device's reboot-banner message.
func ResetGpsProcessor(eng *engine.Engine) (string, error) {
	resp, err := eng.Transaction(protocol.ResetGpsProcessor, nil, nil)
	if err != nil {
		return "", err
	}
	return string(resp.Trailer), nil
}
