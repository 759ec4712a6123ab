// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package utils

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/flokiorg/tpinlock/store"
)

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

func GetFullPath(filename string) (string, error) {
	dir, err := os.Getwd() // Get current working directory
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filename), nil
}

// AppDataDir returns the per-user data directory of appName. TPINLOCK_HOME
// overrides it.
func AppDataDir(appName string) (string, error) {
	if home := strings.TrimSpace(os.Getenv("TPINLOCK_HOME")); home != "" {
		return home, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve data directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

func FormatBootError(err error) string {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		var sysErr *os.SyscallError
		if errors.As(opErr.Err, &sysErr) && errors.Is(sysErr.Err, syscall.ECONNREFUSED) {
			return fmt.Sprintf("Store refused the connection, is redis running? (%v)", err)
		}
	}
	if errors.Is(err, store.ErrUnavailable) {
		return fmt.Sprintf("Store unavailable: %v", err)
	}
	return err.Error()
}
