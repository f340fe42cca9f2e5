// SPDX-License-Identifier: MPL-2.0

package argsig

import "errors"

var errTableUnreadable = errors.New("table unreadable")

// tableDescriptor is an in-memory Descriptor for tests.
type tableDescriptor struct {
	options   []Option
	commaList []string
	optErr    error
	commaErr  error
}

func (d *tableDescriptor) Options() ([]Option, error) {
	if d.optErr != nil {
		return nil, d.optErr
	}
	return d.options, nil
}

func (d *tableDescriptor) CommaListOptionNames() ([]string, error) {
	if d.commaErr != nil {
		return nil, d.commaErr
	}
	return d.commaList, nil
}

func descriptorFunc(d Descriptor) DescriptorFunc {
	return func() (Descriptor, error) { return d, nil }
}

func commandFactory(name string, d Descriptor) CommandFactory {
	return func() (*CommandOwner, error) {
		return NewCommandOwner(name, descriptorFunc(d)), nil
	}
}
