// Command watch-host is a flag-driven CLI front end for the core driver:
// list the device's file directory, read or write a file by id, query
// device state, or issue a control command.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/gousb"

	"wristsync/internal/config"
	"wristsync/internal/transport"
	"wristsync/internal/watch"
)

func main() {
	var (
		op       = flag.String("op", "list", "operation: list, read, write, size, delete, time, format, reset, reset-gps")
		fileID   = flag.String("file-id", "", "file id in hex, e.g. 0x00830001")
		path     = flag.String("path", "", "local file path for read/write")
		confirm  = flag.Bool("confirm", false, "required to run the destructive format operation")
		vendorID = flag.Uint("vendor-id", 0, "override configured USB vendor id")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	vid := cfg.VendorID
	if *vendorID != 0 {
		vid = uint16(*vendorID)
	}

	t := transport.NewHIDTransport(gousb.ID(vid), gousb.ID(cfg.ProductID), 256, 256)
	w, err := watch.Connect(t)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer w.Close()

	log.Printf("connected: product=0x%08X firmware=%s ble=%s", w.Info.ProductID, w.Info.FirmwareVersion, w.Info.BleVersion)

	if err := run(w, *op, *fileID, *path, *confirm); err != nil {
		log.Fatalf("%s: %v", *op, err)
	}
}

func run(w *watch.Watch, op, fileIDStr, path string, confirm bool) error {
	switch op {
	case "list":
		entries, err := w.ListFiles()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("0x%08X\t%d bytes\n", e.FileID, e.Size)
		}
		return nil

	case "read":
		id, err := parseFileID(fileIDStr)
		if err != nil {
			return err
		}
		data, err := w.ReadFile(id)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)

	case "write":
		id, err := parseFileID(fileIDStr)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return w.WriteFile(id, data)

	case "size":
		id, err := parseFileID(fileIDStr)
		if err != nil {
			return err
		}
		size, err := w.GetFileSize(id)
		if err != nil {
			return err
		}
		fmt.Println(size)
		return nil

	case "delete":
		id, err := parseFileID(fileIDStr)
		if err != nil {
			return err
		}
		return w.DeleteFile(id)

	case "time":
		t, err := w.GetTime()
		if err != nil {
			return err
		}
		fmt.Println(t)
		return nil

	case "format":
		if !confirm {
			return fmt.Errorf("format is destructive; pass -confirm to proceed")
		}
		return w.Format()

	case "reset":
		return w.Reset()

	case "reset-gps":
		msg, err := w.ResetGps()
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

func parseFileID(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("-file-id is required for this operation")
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid -file-id %q: %w", s, err)
	}
	return uint32(n), nil
}
