package logger

// LoggingDetail is a key value pair that a log entry includes.
type LoggingDetail interface{ addTo(logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	if fields, ok := f.Value.(Fields); ok {
		nested := make(logEntry)
		fields.addTo(nested)
		e[f.Key] = map[string]any(nested)
		return
	}
	e[f.Key] = f.Value
}

// Fields groups details under a single key when it is passed to Field.
type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField logs the error under the "error" key. A nil error adds nothing.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return Fields{}
	}
	return Field("error", Fields{"message": err.Error()})
}

type logEntry map[string]any
