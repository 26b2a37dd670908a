package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line into a [StructuredConfig].
//
// Flags:
//
//	-a feed server address in format [host]:[port]
//	-provider-url wallet provider JSON-RPC endpoint
//	-contract WavePortal contract address
//	-abi path to an ABI file or Hardhat artifact
//	-request-timeout provider request timeout (e.g. "30s")
//	-poll-interval receipt poll interval (e.g. "2s")
//	-server-timeout feed request timeout (e.g. "10s")
//	-refresh-interval feed wave list refresh interval (e.g. "30s")
//	-version application version reported by the feed
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(newFlagSet(), os.Args[1:])
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.ProviderURL, "provider-url", "", "Wallet provider JSON-RPC URL")
	fs.StringVar(&cfg.Adapter.ContractAddress, "contract", "", "WavePortal contract address")
	fs.StringVar(&cfg.Adapter.ABIPath, "abi", "", "ABI file or Hardhat artifact path")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.ReceiptPollInterval, "poll-interval", 0, "Receipt poll interval (e.g., 2s)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "server-timeout", 0, "Feed request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.RefreshInterval, "refresh-interval", 0, "Feed refresh interval (e.g., 30s)")
	fs.StringVar(&cfg.App.Version, "version", "", "Application version")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
