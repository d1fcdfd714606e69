package tor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "debug", Debug.String())
	assert.Equal(t, "err", Err.String())
	assert.Equal(t, "LogLevel(9)", LogLevel(9).String())
}

func TestLogSeverity_String(t *testing.T) {
	tests := []struct {
		name string
		sev  LogSeverity
		want string
	}{
		{"all domains", LogSeverity{Level: Warn}, "warn"},
		{"one domain", LogSeverity{Domains: []DomainSelector{Domain(HTTP)}, Level: Info}, "[http]info"},
		{"exclusions", LogSeverity{Domains: []DomainSelector{Domain(Circ), NotDomain(DoS)}, Level: Debug}, "[circ,~dos]debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestLogExpand(t *testing.T) {
	tests := []struct {
		name string
		flag TorFlag
		want string
	}{
		{"level", Log{Err}, `Log "err"`},
		{"destination", LogTo{Info, Syslog}, `Log "info syslog"`},
		{"file", LogTo{Notice, File("/var/log/tor/notices.log")}, `Log "notice file /var/log/tor/notices.log"`},
		{"expanded", LogExpanded{[]LogSeverity{{Domains: []DomainSelector{Domain(Handshake)}, Level: Info}, {Level: Notice}}, Stdout}, `Log "[handshake]info notice stdout"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logExpand(tt.flag))
			assert.Equal(t, tt.want, tt.flag.ExpandCLI())
			assert.Equal(t, []string{tt.want}, tt.flag.Expand())
		})
	}

	assert.Panics(t, func() { logExpand(SocksPort{9050}) })
}
