package platform

// Package platform contains OS integration: locating the per-user data
// directory that holds the phone database and revealing files in the system
// file manager.
