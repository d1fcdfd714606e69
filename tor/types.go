package tor

import (
	"net"
	"strconv"
)

// SizeUnit qualifies bandwidth and memory amounts.
type SizeUnit int

const (
	Bytes SizeUnit = iota
	KBytes
	MBytes
	GBytes
	TBytes
	Bits
	KBits
	MBits
	GBits
	TBits
)

var sizeUnitNames = [...]string{
	"Bytes", "KBytes", "MBytes", "GBytes", "TBytes",
	"Bits", "KBits", "MBits", "GBits", "TBits",
}

func (u SizeUnit) String() string {
	if u < 0 || int(u) >= len(sizeUnitNames) {
		return "SizeUnit(" + strconv.Itoa(int(u)) + ")"
	}
	return sizeUnitNames[u]
}

// Address is a listener or target address spelled the way torrc expects.
type Address string

// Port listens on or targets a bare port.
func Port(p uint16) Address {
	return Address(strconv.FormatUint(uint64(p), 10))
}

// Host is an address without a port.
func Host(host string) Address {
	return Address(host)
}

// AddressPort joins host and port, bracketing IPv6 hosts.
func AddressPort(host string, port uint16) Address {
	return Address(net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10)))
}

// Unix is a unix domain socket path.
func Unix(path string) Address {
	return Address("unix:" + path)
}

// ControlPortFlag changes the behavior of a unix control socket.
type ControlPortFlag string

const (
	GroupWritable     ControlPortFlag = "GroupWritable"
	WorldWritable     ControlPortFlag = "WorldWritable"
	RelaxDirModeCheck ControlPortFlag = "RelaxDirModeCheck"
)

// SocksPortFlag changes the behavior of a socks port.
type SocksPortFlag string

const (
	NoIPv4Traffic      SocksPortFlag = "NoIPv4Traffic"
	IPv6Traffic        SocksPortFlag = "IPv6Traffic"
	PreferIPv6         SocksPortFlag = "PreferIPv6"
	NoDNSRequest       SocksPortFlag = "NoDNSRequest"
	NoOnionTraffic     SocksPortFlag = "NoOnionTraffic"
	OnionTrafficOnly   SocksPortFlag = "OnionTrafficOnly"
	CacheIPv4DNS       SocksPortFlag = "CacheIPv4DNS"
	CacheIPv6DNS       SocksPortFlag = "CacheIPv6DNS"
	SocksGroupWritable SocksPortFlag = "GroupWritable"
	SocksWorldWritable SocksPortFlag = "WorldWritable"
	CacheDNS           SocksPortFlag = "CacheDNS"
	UseIPv4Cache       SocksPortFlag = "UseIPv4Cache"
	UseIPv6Cache       SocksPortFlag = "UseIPv6Cache"
	UseDNSCache        SocksPortFlag = "UseDNSCache"
	PreferIPv6Automap  SocksPortFlag = "PreferIPv6Automap"
	PreferSOCKSNoAuth  SocksPortFlag = "PreferSOCKSNoAuth"
)

// SocksPortIsolationFlag controls which clients may share a circuit.
type SocksPortIsolationFlag string

const (
	IsolateClientAddr         SocksPortIsolationFlag = "IsolateClientAddr"
	IsolateSOCKSAuth          SocksPortIsolationFlag = "IsolateSOCKSAuth"
	IsolateClientProtocol     SocksPortIsolationFlag = "IsolateClientProtocol"
	IsolateDestPort           SocksPortIsolationFlag = "IsolateDestPort"
	IsolateDestAddr           SocksPortIsolationFlag = "IsolateDestAddr"
	KeepAliveIsolateSOCKSAuth SocksPortIsolationFlag = "KeepAliveIsolateSOCKSAuth"
)

// ServiceVersion is the onion service protocol version.
type ServiceVersion int

const (
	// Deprecated: tor no longer serves v2 onion services; use V3.
	V2 ServiceVersion = 2
	V3 ServiceVersion = 3
)

// HiddenServiceAuthType selects how authorized clients authenticate.
type HiddenServiceAuthType string

const (
	Basic   HiddenServiceAuthType = "basic"
	Stealth HiddenServiceAuthType = "stealth"
)
