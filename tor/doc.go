// Package tor builds command lines for the tor daemon from typed flags.
//
// The flag and subcommand types are generated from flags.expand:
//
//	cmd := tor.NewCommand().
//		Flag(tor.DataDirectory{F0: "/var/lib/tor"}).
//		Flag(tor.SocksPort{F0: 9050})
//	argv := cmd.Args() // ["tor", "DataDirectory", "/var/lib/tor", "SocksPort", "9050"]
package tor

//go:generate go run github.com/teranos/expandgen/cmd/expandgen generate flags.expand
