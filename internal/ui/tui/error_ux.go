package tui

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/solidlab/internal/domain"
)

// userMessage turns an error into a short line for the toast area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "regionfactory") {
				return "Unknown region"
			}
			return "Not found"

		case domain.KindInvalidYear:
			return "Year must be an integer"

		case domain.KindUnknownKind:
			return "Unknown vehicle kind"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "sqlstore") || strings.HasPrefix(oe.Op, "filestore") {
				return "Library storage failed (see logs)"
			}
			return msgUnexpected

		default:
			return msgUnexpected
		}
	}

	return msgUnexpected
}
