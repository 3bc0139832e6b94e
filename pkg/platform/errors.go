package platform

import (
	"errors"
	"fmt"
)

// ErrWMIUnavailable is returned when Windows Management Instrumentation
// cannot be used from this binary.
var ErrWMIUnavailable = errors.New("WMI is not available on this platform")

// Kind classifies adapter failures.
type Kind int

const (
	// CommandFailed means an external utility failed or could not be started.
	CommandFailed Kind = iota
	// SourceMissing means the file the adapter reads from does not exist.
	SourceMissing
	// DependencyMissing means the query mechanism itself is unavailable.
	DependencyMissing
	// ParseFailed means the data source returned something unreadable.
	ParseFailed
)

func (k Kind) String() string {
	switch k {
	case CommandFailed:
		return "command failed"
	case SourceMissing:
		return "source missing"
	case DependencyMissing:
		return "dependency missing"
	case ParseFailed:
		return "parse failed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AdapterError is the failure of an adapter as a whole.
type AdapterError struct {
	Platform Identity
	Kind     Kind
	Err      error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s adapter: %s: %v", e.Platform, e.Kind, e.Err)
}

func (e *AdapterError) Unwrap() error { return e.Err }

const (
	sourceMissingMessage  = "Информация о батарее недоступна или путь к батарее неверный."
	wmiUnavailableMessage = "Интерфейс WMI недоступен (%v). Убедитесь, что служба \"Инструментарий управления Windows\" (winmgmt) запущена."
	collectFailedMessage  = "Не удалось получить детальную информацию о батарее: %v"
)

// Describe renders an adapter failure as the text placed in the report
// instead of the details.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var ae *AdapterError
	if !errors.As(err, &ae) {
		return fmt.Sprintf(collectFailedMessage, err)
	}

	switch ae.Kind {
	case SourceMissing:
		return sourceMissingMessage
	case DependencyMissing:
		return fmt.Sprintf(wmiUnavailableMessage, ae.Err)
	default:
		return fmt.Sprintf(collectFailedMessage, ae.Err)
	}
}
