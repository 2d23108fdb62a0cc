package discovery

import (
	"fmt"
	"net"
	"sort"
	"time"

	"golang.org/x/exp/slices"

	"github.com/google/uuid"
	ssdp "github.com/koron/go-ssdp"
)

var (
	serviceType    = "brpts:web"
	serverName     = "BrptsServer/1.0"
	serverUniqueId = uuid.NewString()
	cacheMaxAge, _ = time.ParseDuration("30m")
)

// How long FindService callers usually listen.
const DefaultWait = time.Second

// ServiceURL is the location advertised for a web server listening on port.
func ServiceURL(host, port string) string {
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, port))
}

// Advertise the web server via SSDP at the given location URL.
// Close() the returned Advertiser when done.
func AdvertiseService(location string) (*ssdp.Advertiser, error) {
	return ssdp.Advertise(serviceType, serverUniqueId, location, serverName, int(cacheMaxAge.Seconds()))
}

// Find brpts web servers on the current LAN via SSDP.
// Returns their locations, sorted and without duplicates.
func FindService(waitTime time.Duration) ([]string, error) {
	servers, err := ssdp.Search(serviceType, searchSeconds(waitTime), "")
	if err != nil {
		return nil, err
	}
	var locs []string
	for _, svr := range servers {
		if svr.Type != serviceType {
			continue
		}
		locs = append(locs, svr.Location)
	}
	return compactLocations(locs), nil
}

// SSDP waits in whole seconds; round up, and wait at least one.
func searchSeconds(waitTime time.Duration) int {
	secs := int((waitTime + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

func compactLocations(locs []string) []string {
	sort.Strings(locs)
	return slices.Compact(locs)
}

// OutboundIP is the local address used to reach other hosts, falling back
// to loopback when there is no route.
func OutboundIP() string {
	conn, err := net.Dial("udp", "192.0.2.1:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}
