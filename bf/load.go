package bf

import (
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/e5"
	"github.com/reusee/taibf/logs"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

type Load func(path string) (*Source, error)

func (Module) Load(
	logger logs.Logger,
) Load {
	return func(path string) (*Source, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			readErr := &SourceReadError{
				Path:  path,
				Err:   wrap(err),
				Cause: err,
			}
			logger.Debug("read source",
				"path", path,
				"error", readErr.Err,
			)
			return nil, readErr
		}

		if len(content) > 0 {
			mtype := mimetype.Detect(content)
			isText := false
			for t := mtype; t != nil; t = t.Parent() {
				if t.Is("text/plain") {
					isText = true
					break
				}
			}
			if !isText {
				logger.Warn("source does not look like text",
					"path", path,
					"mime", mtype.String(),
				)
			}
		}

		logger.Debug("source loaded",
			"path", path,
			"bytes", len(content),
		)
		return NewSource(path, string(content)), nil
	}
}
