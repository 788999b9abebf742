package log

import "reflect"

// Factory is implemented by logging backends to produce named loggers. An empty name requests the root logger.
//
// Factories are shared by the whole process once bound so must be safe for concurrent use.
type Factory interface {
	Logger(name string) Logger
}

// Identifier may be implemented by a 'Factory' to override the identifier it is registered under, by default the fully
// qualified name of the factory type is used e.g. 'github.com/couchbase/tools-logging/backend/zapbackend.Factory'.
type Identifier interface {
	Identifier() string
}

// Handle is a discovered factory paired with the identifier used to select it using 'FactoryKey'.
type Handle struct {
	ID      string
	Factory Factory
}

// NewHandle returns a handle for the given factory.
func NewHandle(factory Factory) Handle {
	if identifier, ok := factory.(Identifier); ok {
		return Handle{ID: identifier.Identifier(), Factory: factory}
	}

	return Handle{ID: typeName(reflect.TypeOf(factory)), Factory: factory}
}

// String implements 'fmt.Stringer' so that handles are printed using their identifier.
func (h Handle) String() string {
	return h.ID
}

// typeName returns the fully qualified name of the given type, dereferencing any pointers.
func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
