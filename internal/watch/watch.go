// Package watch provides the facade callers use instead of touching the
// transaction engine directly: Connect identifies the device and resolves
// its DeviceProfile, then Watch exposes the device's file, directory and
// command operations as methods over that one connection.
package watch

import (
	"fmt"

	"wristsync/internal/commands"
	"wristsync/internal/deviceprofile"
	"wristsync/internal/directory"
	"wristsync/internal/engine"
	"wristsync/internal/filetransfer"
	"wristsync/internal/transport"
)

// Info describes the identity of a connected device, gathered during Connect.
type Info struct {
	ProductID       uint32
	FirmwareVersion string
	BleVersion      string
}

// Watch wraps one transaction engine and the device profile resolved for
// it, exposing the protocol's query/control commands and file operations
// without requiring callers to construct transactions themselves.
type Watch struct {
	Info      Info
	engine    *engine.Engine
	transport transport.Transport
	files     *filetransfer.Service
	profile   deviceprofile.Profile
}

// Connect opens t, identifies the device via GetProductId, resolves its
// DeviceProfile, and fetches firmware/BLE versions, returning a ready Watch.
func Connect(t transport.Transport) (*Watch, error) {
	if err := t.Open(); err != nil {
		return nil, fmt.Errorf("open transport: %w", err)
	}

	eng := engine.New(t)

	productID, err := commands.GetProductId(eng)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("get product id: %w", err)
	}
	profile := deviceprofile.ForProductID(productID)

	firmware, err := commands.GetFirmwareVersion(eng)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("get firmware version: %w", err)
	}
	ble, err := commands.GetBleVersion(eng)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("get ble version: %w", err)
	}

	return &Watch{
		Info: Info{
			ProductID:       productID,
			FirmwareVersion: firmware,
			BleVersion:      ble,
		},
		engine:    eng,
		transport: t,
		files:     filetransfer.NewService(eng, profile),
		profile:   profile,
	}, nil
}

// Close releases the underlying transport.
func (w *Watch) Close() error {
	return w.transport.Close()
}

// ListFiles enumerates the device's file directory.
func (w *Watch) ListFiles() ([]directory.Entry, error) {
	return directory.ListFiles(w.engine)
}

// ReadFile reads a whole file by id.
func (w *Watch) ReadFile(fileID uint32) ([]byte, error) {
	return w.files.ReadFile(fileID)
}

// WriteFile writes data to fileID.
func (w *Watch) WriteFile(fileID uint32, data []byte) error {
	return w.files.WriteFile(fileID, data)
}

// DeleteFile deletes fileID from the device.
func (w *Watch) DeleteFile(fileID uint32) error {
	return w.files.DeleteFile(fileID)
}

// GetFileSize returns the size of fileID as reported by the device.
func (w *Watch) GetFileSize(fileID uint32) (uint32, error) {
	return w.files.GetFileSize(fileID)
}

// GetTime returns the device's current time as seconds since the UNIX epoch.
func (w *Watch) GetTime() (uint32, error) {
	return commands.GetWatchTime(w.engine)
}

// Format erases the device's file system. Destructive; callers must gate
// this behind their own confirmation step.
func (w *Watch) Format() error {
	return commands.FormatWatch(w.engine)
}

// Reset reboots the device. Send-only; no response is awaited.
func (w *Watch) Reset() error {
	return commands.ResetDevice(w.engine)
}

// ResetGps resets the device's GPS subsystem, returning its reboot-banner message.
func (w *Watch) ResetGps() (string, error) {
	return commands.ResetGpsProcessor(w.engine)
}

// Profile returns the DeviceProfile resolved for this connection.
func (w *Watch) Profile() deviceprofile.Profile {
	return w.profile
}
