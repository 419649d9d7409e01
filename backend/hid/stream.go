package hid

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// DialStream connects to a device stream of a VIIPER server. The device must
// already exist on the bus. Everything written to the returned connection is
// delivered to the device as input state.
func DialStream(ctx context.Context, addr string, busID uint32, devID string, timeout time.Duration) (net.Conn, error) {
	d := &net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetNoDelay(true)
	}
	streamPath := fmt.Sprintf("bus/%d/%s\x00", busID, devID)
	if _, err := conn.Write([]byte(streamPath)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}
	return conn, nil
}

// ParseDevice splits a "busId/devId" device reference.
func ParseDevice(s string) (uint32, string, error) {
	bus, dev, ok := strings.Cut(s, "/")
	if !ok || dev == "" {
		return 0, "", fmt.Errorf("invalid device %q, want busId/devId", s)
	}
	busID, err := strconv.ParseUint(bus, 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("invalid busId in %q: %w", s, err)
	}
	return uint32(busID), dev, nil
}
