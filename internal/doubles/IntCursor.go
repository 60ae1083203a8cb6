package doubles

import "go.llib.dev/lazyseq"

//go:generate mockgen -destination IntCursor_mock.go -source IntCursor.go -package doubles

// IntCursor is the int instance of lazyseq.Cursor, mockgen can't work with generic interfaces.
type IntCursor interface {
	Close() error
	Err() error
	Next() bool
	Value() int
}

var _ lazyseq.Cursor[int] = IntCursor(nil)
