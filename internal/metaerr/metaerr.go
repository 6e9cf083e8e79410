// Package metaerr attaches structured key-value metadata to errors so
// that log calls can report context without baking it into the message.
package metaerr

import "errors"

type metaError struct {
	err  error
	meta []any
}

// WithMetadata wraps err with alternating key-value pairs.
// It returns nil if err is nil.
func WithMetadata(err error, keyvals ...any) error {
	if err == nil {
		return nil
	}
	return &metaError{err: err, meta: keyvals}
}

func (e *metaError) Error() string {
	return e.err.Error()
}

func (e *metaError) Unwrap() error {
	return e.err
}

// GetMetadata collects the metadata of every wrapped error in err's
// chain, outermost first.
func GetMetadata(err error) []any {
	var meta []any
	for err != nil {
		var me *metaError
		if !errors.As(err, &me) {
			break
		}
		meta = append(meta, me.meta...)
		err = me.err
	}
	return meta
}
