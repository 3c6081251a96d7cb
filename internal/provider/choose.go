package provider

import (
	"context"
	"fmt"
)

// Provider selection modes
const (
	ModeAuto   = "auto"
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// Modes lists the accepted selection modes
func Modes() []string {
	return []string{ModeAuto, ModeRemote, ModeLocal}
}

// Choose picks the backend for mode. In auto mode the remote backend is used
// when its health check passes, otherwise the local one. available reports
// the health check result, which is only run in auto mode.
func Choose(ctx context.Context, mode string, remote, local Backend) (chosen Backend, available bool, err error) {
	switch mode {
	case ModeRemote:
		return remote, true, nil
	case ModeLocal:
		return local, false, nil
	case ModeAuto, "":
		if remote.IsAvailable(ctx) {
			return remote, true, nil
		}
		return local, false, nil
	default:
		return nil, false, fmt.Errorf("unknown provider mode %q", mode)
	}
}
