package tor

import (
	"fmt"

	"github.com/teranos/expandgen/expand"
)

// LogLevel is a tor log severity.
type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Notice
	Warn
	Err
)

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Notice:
		return "notice"
	case Warn:
		return "warn"
	case Err:
		return "err"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// LogDestination is where log messages go.
type LogDestination string

const (
	Stdout  LogDestination = "stdout"
	Stderr  LogDestination = "stderr"
	Syslog  LogDestination = "syslog"
	Android LogDestination = "android"
)

// File logs to the file at path.
func File(path string) LogDestination {
	return LogDestination("file " + path)
}

// LogDomain is a subsystem that log severities can be restricted to.
type LogDomain string

const (
	General   LogDomain = "general"
	Crypto    LogDomain = "crypto"
	Net       LogDomain = "net"
	Config    LogDomain = "config"
	FS        LogDomain = "fs"
	Protocol  LogDomain = "protocol"
	MM        LogDomain = "mm"
	HTTP      LogDomain = "http"
	App       LogDomain = "app"
	Control   LogDomain = "control"
	Circ      LogDomain = "circ"
	Rend      LogDomain = "rend"
	Bug       LogDomain = "bug"
	Dir       LogDomain = "dir"
	Dirserv   LogDomain = "dirserv"
	OR        LogDomain = "or"
	Edge      LogDomain = "edge"
	Acct      LogDomain = "acct"
	Hist      LogDomain = "hist"
	Handshake LogDomain = "handshake"
	Heartbeat LogDomain = "heartbeat"
	Channel   LogDomain = "channel"
	Sched     LogDomain = "sched"
	Guard     LogDomain = "guard"
	Consdiff  LogDomain = "consdiff"
	DoS       LogDomain = "dos"
	Process   LogDomain = "process"
	PT        LogDomain = "pt"
	BTrack    LogDomain = "btrack"
	Mesg      LogDomain = "mesg"
)

// DomainSelector includes a log domain, or excludes it when Exclude is set.
type DomainSelector struct {
	Exclude bool
	Domain  LogDomain
}

// Domain selects d.
func Domain(d LogDomain) DomainSelector {
	return DomainSelector{Domain: d}
}

// NotDomain selects every domain but d.
func NotDomain(d LogDomain) DomainSelector {
	return DomainSelector{Exclude: true, Domain: d}
}

func (s DomainSelector) String() string {
	if s.Exclude {
		return "~" + string(s.Domain)
	}
	return string(s.Domain)
}

// LogSeverity is one "[domains]level" term of a Log option. Without
// domains it applies to all of them.
type LogSeverity struct {
	Domains []DomainSelector
	Level   LogLevel
}

func (s LogSeverity) String() string {
	if len(s.Domains) == 0 {
		return s.Level.String()
	}
	return "[" + expand.CommaList(s.Domains...).String() + "]" + s.Level.String()
}

// logExpand renders every Log variant as one Log option.
func logExpand(f TorFlag) string {
	var (
		severities []LogSeverity
		dest       LogDestination
	)
	switch f := f.(type) {
	case Log:
		severities = []LogSeverity{{Level: f.F0}}
	case LogTo:
		severities = []LogSeverity{{Level: f.F0}}
		dest = f.F1
	case LogExpanded:
		severities = f.F0
		dest = f.F1
	default:
		panic(fmt.Sprintf("logExpand called with %T", f))
	}

	value := expand.SpaceList(severities...).String()
	if dest != "" {
		value += " " + string(dest)
	}
	return expand.Join([]string{"Log", value})
}
