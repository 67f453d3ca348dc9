package netutil

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var ErrPortInUse = errors.New("port is already in use")

// CheckPortAvailable binds host:port and releases it straight away. It
// returns ErrPortInUse (wrapped) when the bind fails.
func CheckPortAvailable(host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPortInUse, addr, err)
	}
	return ln.Close()
}
