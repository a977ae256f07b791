package probe

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

const publicIPTimeout = 2 * time.Second

// publicIPURL is a variable so tests can point the lookup at a local server.
var publicIPURL = "https://api.ipify.org"

// localIP resolves the machine's own hostname first; when that yields nothing
// usable it scans the interfaces for the first non-loopback IPv4 address.
func localIP() string {
	if host, err := os.Hostname(); err == nil {
		if addrs, err := net.LookupHost(host); err == nil {
			for _, a := range addrs {
				if ip := net.ParseIP(a); ip != nil && !ip.IsLoopback() && ip.To4() != nil {
					return ip.String()
				}
			}
		}
	}

	return firstInterfaceIP()
}

func firstInterfaceIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}

	return ""
}

// publicIP performs the single outbound request of a run. Best-effort: any
// network failure, bad status or garbage body yields "" and the field is
// omitted from the banner.
func publicIP(ctx context.Context, url string) string {
	client := &http.Client{Timeout: publicIPTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}

	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return ""
	}

	ip := strings.TrimSpace(string(body))
	if net.ParseIP(ip) == nil {
		return ""
	}

	return ip
}
