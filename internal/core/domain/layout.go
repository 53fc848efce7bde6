package domain

import (
	"os"
	"path/filepath"
)

const (
	// CacheDirName is the name of the tool's directory under the user cache root.
	CacheDirName = "errdex"

	// SnapshotFileName is the name of the cached record sequence.
	SnapshotFileName = "errors.json"

	// SnapshotMetaFileName is the name of the snapshot metadata file.
	SnapshotMetaFileName = "errors.meta.json"

	// ReleaseFileName is the name of the cached release-information file.
	ReleaseFileName = "release.json"

	// ConfigDirName is the name of the tool's directory under the user config root.
	ConfigDirName = "errdex"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

const (
	// KernReturnHeaderPath is the fixed kernel-return-code header, always scanned as Mach.
	KernReturnHeaderPath = "/usr/include/mach/kern_return.h"

	// ErrnoHeaderPath is the fixed errno header, always scanned as POSIX.
	ErrnoHeaderPath = "/usr/include/sys/errno.h"

	// SearchRootPath is the default scope for the file metadata search.
	SearchRootPath = "/System/Library/Frameworks"
)

// DefaultCacheDir returns the snapshot and job-state directory.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, CacheDirName), nil
}

// DefaultConfigPath returns the path of the optional configuration file.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, ConfigDirName, ConfigFileName), nil
}
