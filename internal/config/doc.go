// Package config provides configuration loading, merging, and validation
// facilities for the wave client and the wave feed server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the read-only feed.
package config
