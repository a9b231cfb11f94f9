// Command watch-monitor serves an HTTP status endpoint reporting the
// connected device's identity and directory alongside host CPU/memory
// stats, for headless operation.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/gousb"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"wristsync/internal/config"
	"wristsync/internal/transport"
	"wristsync/internal/watch"
)

// Monitor serves status over HTTP for a single connected device.
type Monitor struct {
	watch     *watch.Watch
	startTime time.Time
}

func main() {
	addr := flag.String("addr", ":8090", "HTTP listen address")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	t := transport.NewHIDTransport(gousb.ID(cfg.VendorID), gousb.ID(cfg.ProductID), 256, 256)
	w, err := watch.Connect(t)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer w.Close()

	m := &Monitor{watch: w, startTime: time.Now()}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	api.GET("/status", m.handleStatus)
	api.GET("/files", m.handleFiles)

	log.Printf("watch-monitor listening on %s", *addr)
	if err := router.Run(*addr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func (m *Monitor) handleStatus(c *gin.Context) {
	cpuPercent, _ := cpu.Percent(0, false)
	virtualMem, _ := mem.VirtualMemory()

	status := gin.H{
		"device": gin.H{
			"product_id":      m.watch.Info.ProductID,
			"firmware_version": m.watch.Info.FirmwareVersion,
			"ble_version":     m.watch.Info.BleVersion,
		},
		"uptime_seconds": time.Since(m.startTime).Seconds(),
		"host": gin.H{
			"cpu_percent":    firstOrZero(cpuPercent),
			"mem_used_bytes": memUsedOrZero(virtualMem),
		},
	}
	c.JSON(http.StatusOK, status)
}

func (m *Monitor) handleFiles(c *gin.Context) {
	entries, err := m.watch.ListFiles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{"file_id": e.FileID, "size": e.Size}
	}
	c.JSON(http.StatusOK, gin.H{"files": out})
}

func firstOrZero(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

func memUsedOrZero(v *mem.VirtualMemoryStat) uint64 {
	if v == nil {
		return 0
	}
	return v.Used
}
