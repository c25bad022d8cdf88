// Package fields implements the SWIFT MT field codec library: one Go
// type per field tag (or per tagged-union option group), each able to
// parse from and emit back to wire form.
package fields

// Field is satisfied by every parsed field value in this package.
type Field interface {
	ToWire() string
}
