package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments args (without the program
// name).
//
// Flags:
//
//	-a HTTP address in format [host]:[port]
//	-grpc-address gRPC health address in format [host]:[port]
//	-orchestrator orchestrator type
//	-c/-config JSON or YAML file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-auth-sign-key bearer token signing key
//	-auth-issuer bearer token issuer
//	-log-file log file path
//	-log-level console log level
//	-describe print registered plugins and exit
//	-issue-token print a bearer token for the given subject and exit
//	-token-ttl lifetime of the issued token (e.g., "24h")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, grpcAddress NetAddress
	var orchestratorType string
	var configPath string
	var requestTimeout time.Duration
	var authSignKey, authIssuer string
	var logFile, logLevel string
	var describe bool
	var issueToken string
	var tokenTTL time.Duration

	fs := flag.NewFlagSet("oc-serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "Net address host:port")
	fs.Var(&grpcAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&orchestratorType, "orchestrator", "", "Orchestrator type")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&authSignKey, "auth-sign-key", "", "Bearer token signing key")
	fs.StringVar(&authIssuer, "auth-issuer", "", "Bearer token issuer")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Console log level")
	fs.BoolVar(&describe, "describe", false, "Print registered plugins and exit")
	fs.StringVar(&issueToken, "issue-token", "", "Print a bearer token for this subject and exit")
	fs.DurationVar(&tokenTTL, "token-ttl", 0, "Lifetime of the issued token (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		OCServe: OCServe{
			OrchestratorType: orchestratorType,
			HTTPAddress:      httpAddress.String(),
			GRPCAddress:      grpcAddress.String(),
			RequestTimeout:   requestTimeout,
			Auth: Auth{
				SignKey: authSignKey,
				Issuer:  authIssuer,
			},
			ConfigFilePath: configPath,
		},
		Log: Log{
			File:         logFile,
			ConsoleLevel: logLevel,
		},
		Describe:   describe,
		IssueToken: issueToken,
		TokenTTL:   tokenTTL,
	}, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
