package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "git.home.luguber.info/inful/ctfpress/internal/foundation/errors"
)

// WriteTextfile writes everything gathered from g to path in the Prometheus
// text exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryOutput, "write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
