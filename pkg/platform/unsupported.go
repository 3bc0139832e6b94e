package platform

import (
	"context"
	"fmt"
)

// UnsupportedAdapter stands in for operating systems without an adapter.
type UnsupportedAdapter struct {
	identity string
}

func (a *UnsupportedAdapter) Name() string { return "unsupported" }

func (a *UnsupportedAdapter) Collect(context.Context) (Details, error) {
	var d Details
	d.Note(fmt.Sprintf("Данная платформа (%s) не поддерживается для детальной информации о батарее.", a.identity))
	return d, nil
}
