package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-c/-config json file path with configs
//	-mode application mode (development, production, test)
//	-log-level zerolog level name
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-allowed-origin CORS origin allowed with credentials
//	-cookie-domain session cookie domain
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-user-service user service gRPC target
//	-product-service product service gRPC target
//	-rpc-timeout per-call backend timeout (e.g., "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auth-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var mode, logLevel string
	var tokenSignKey, tokenIssuer string
	var allowedOrigin, cookieDomain string
	var shutdownTimeout time.Duration
	var userService, productService string
	var rpcTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&mode, "mode", "", "Application mode (development, production, test)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&allowedOrigin, "allowed-origin", "", "CORS origin allowed with credentials")
	fs.StringVar(&cookieDomain, "cookie-domain", "", "Session cookie domain")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&userService, "user-service", "", "User service gRPC target host:port")
	fs.StringVar(&productService, "product-service", "", "Product service gRPC target host:port")
	fs.DurationVar(&rpcTimeout, "rpc-timeout", 0, "Backend call timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Mode:     mode,
			LogLevel: logLevel,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			AllowedOrigin:   allowedOrigin,
			CookieDomain:    cookieDomain,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			UserServiceAddress:    userService,
			ProductServiceAddress: productService,
			RequestTimeout:        rpcTimeout,
		},
		JSONFilePath: jsonConfigPath,
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range, checks IP correctness unless host is "localhost", and returns an
// error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
