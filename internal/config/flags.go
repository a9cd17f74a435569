package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-data-url remote data API base URL
//	-storage-url remote storage API base URL
//	-bucket storage bucket name
//	-api-key remote service API key
//	-adapter-timeout outbound request timeout
//	-storage-backend object store backend ("rest" or "gcs")
//	-log-level log level
//	-token-sign-key session token signing key
//	-cleanup-orphans delete the stored object when the metadata insert fails
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout time.Duration
	var dataURL, storageURL, bucket, apiKey string
	var adapterTimeout time.Duration
	var storageBackend string
	var logLevel string
	var tokenSignKey string
	var cleanupOrphans bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&dataURL, "data-url", "", "Remote data API base URL")
	flag.StringVar(&storageURL, "storage-url", "", "Remote storage API base URL")
	flag.StringVar(&bucket, "bucket", "", "Storage bucket")
	flag.StringVar(&apiKey, "api-key", "", "Remote service API key")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 10s)")
	flag.StringVar(&storageBackend, "storage-backend", "", "Object store backend: rest or gcs")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.BoolVar(&cleanupOrphans, "cleanup-orphans", false, "Delete uploaded object when metadata insert fails")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel:               logLevel,
			TokenSignKey:           tokenSignKey,
			CleanupOrphanedUploads: cleanupOrphans,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			DataURL:        dataURL,
			StorageURL:     storageURL,
			Bucket:         bucket,
			APIKey:         apiKey,
			RequestTimeout: adapterTimeout,
		},
		Storage: Storage{
			Backend: storageBackend,
		},
		JSONFilePath: jsonConfigPath,
	}
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
// An empty host means all interfaces. Any host other than "localhost" must be
// an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
